package record

import (
	"bufio"
	"io"
	"strings"

	"github.com/jupito/recstream/internal/textutil"
)

// The comment character.  Everything from its first occurrence to the end of
// the line is removed before a line is classified, so a ':' inside a comment
// does not make a line a key-value line.
const commenter = '#'

// maxLineSize is the longest physical line the parser accepts.
const maxLineSize = 1024 * 1024

// A Parser reads a text stream line by line and produces records one at a
// time.  It holds only the record currently being built, never the whole
// input or output.
//
// The produced sequence is finite and non-restartable.  A consumer that
// stops calling Next before io.EOF simply abandons the pending record, no
// cleanup is required.
type Parser struct {
	scanner *bufio.Scanner
	input   *countingReader

	// At most one of these is non-nil at any time.  Whichever is non-nil is
	// the pending record and is guaranteed to be non-empty.
	mapping *Mapping
	list    *List

	lineCount int
}

// NewParser sets up a new Parser instance to read from the given input.
func NewParser(in io.Reader) *Parser {
	input := &countingReader{reader: in}
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Parser{scanner: scanner, input: input}
}

// Next returns the next completed record.  It returns io.EOF once the input
// is exhausted and any pending record has been returned, or the underlying
// read error if one occurs.
//
// There are no malformed inputs: every line is classified by its shape
// after comment stripping, so Next only fails when reading fails.
func (p *Parser) Next() (Record, error) {
	for p.scanner.Scan() {
		p.lineCount++
		line := textutil.SanitizeLine(p.scanner.Text(), commenter)
		if rec := p.consumeLine(line); rec != nil {
			return rec, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	// End of input flushes whatever is still pending.  Only one of the two
	// can be non-nil but both are checked to be safe.
	if rec := p.takeList(); rec != nil {
		return rec, nil
	}
	if rec := p.takeMapping(); rec != nil {
		return rec, nil
	}
	return nil, io.EOF
}

// consumeLine feeds one sanitized line to the parser state and returns a
// record if the line completed one, else nil.
func (p *Parser) consumeLine(line string) Record {
	if key, value, isKeyValue := splitKeyValue(line); isKeyValue {
		// A key-value line first displaces a pending list, then a pending
		// mapping that already has this key.  In both cases the new entry
		// starts a fresh mapping.
		if rec := p.takeList(); rec != nil {
			p.setKey(key, value)
			return rec
		}
		if p.mapping != nil && p.mapping.Has(key) {
			rec := p.takeMapping()
			p.setKey(key, value)
			return rec
		}
		p.setKey(key, value)
		return nil
	}
	if line != "" {
		// A bare value line displaces a pending mapping.
		rec := p.takeMapping()
		if p.list == nil {
			p.list = NewList()
		}
		p.list.Append(line)
		return rec
	}
	// A blank line flushes a pending list.  It does NOT flush a pending
	// mapping: mappings are only completed by a duplicate key, a bare line
	// or the end of the input.  Arguably an inconsistency, but downstream
	// consumers can depend on either behavior, so it stays.
	return p.takeList()
}

func (p *Parser) setKey(key, value string) {
	if p.mapping == nil {
		p.mapping = NewMapping()
	}
	p.mapping.Set(key, value)
}

func (p *Parser) takeMapping() Record {
	if p.mapping == nil {
		return nil
	}
	rec := p.mapping
	p.mapping = nil
	return rec
}

func (p *Parser) takeList() Record {
	if p.list == nil {
		return nil
	}
	rec := p.list
	p.list = nil
	return rec
}

// LineCount returns the number of physical lines read so far.
func (p *Parser) LineCount() int {
	return p.lineCount
}

// ByteCount returns the number of bytes consumed from the input source.
// Reading is buffered, so mid-parse it can run ahead of the line last
// returned; once Next has returned io.EOF it is the exact size of the
// input, whether or not the last line had a terminator.
func (p *Parser) ByteCount() int64 {
	return p.input.count
}

// countingReader counts the bytes delivered by the wrapped reader.
type countingReader struct {
	reader io.Reader
	count  int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.count += int64(n)
	return n, err
}

// splitKeyValue classifies a sanitized line.  A line containing ':' is a
// key-value line, split on the first ':' with both sides trimmed; either
// side may be empty.  Anything else is a bare line.
func splitKeyValue(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
