// Package joinline joins physical input lines into logical lines.  A line
// whose first character is whitespace continues the previous line; the lines
// of a group are trimmed and joined with a configurable separator.
package joinline

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSeparator is the separator used by NewJoiner when none is given on
// the command line.
const DefaultSeparator = " "

// A Joiner accumulates continuation lines and writes each completed group as
// one line to its output.  Feed it physical lines with WriteLine and call
// Close when the input is exhausted to flush the last group.  Close must be
// called on every exit path: flushing is deterministic, nothing relies on
// finalization.
type Joiner struct {
	out     io.Writer
	sep     string
	group   []string
	started bool
	closed  bool
}

// NewJoiner returns a Joiner writing joined lines to out, joining group
// members with sep.
func NewJoiner(out io.Writer, sep string) *Joiner {
	return &Joiner{out: out, sep: sep}
}

// WriteLine feeds one physical line (without its line terminator) to the
// joiner.  A line starting with whitespace joins the current group, any
// other line completes the current group and starts a new one.  Writing the
// completed group to the output may fail, in which case the error is
// returned.
func (j *Joiner) WriteLine(line string) error {
	if j.started && isContinuation(line) {
		j.group = append(j.group, strings.TrimSpace(line))
		return nil
	}
	err := j.flush()
	j.started = true
	j.group = append(j.group, strings.TrimSpace(line))
	return err
}

// Close flushes the buffered group, if any.  It is idempotent, so it is safe
// to both defer it and call it explicitly to check the error.
func (j *Joiner) Close() error {
	if j.closed {
		return nil
	}
	j.closed = true
	return j.flush()
}

func (j *Joiner) flush() error {
	if !j.started {
		return nil
	}
	joined := strings.Join(j.group, j.sep)
	j.group = j.group[:0]
	j.started = false
	_, err := io.WriteString(j.out, joined+"\n")
	return err
}

func isContinuation(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return r != utf8.RuneError && unicode.IsSpace(r)
}
