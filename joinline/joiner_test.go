package joinline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinAll(t *testing.T, input string, sep string) string {
	t.Helper()
	var buf bytes.Buffer
	joiner := NewJoiner(&buf, sep)
	for _, line := range splitLines(input) {
		require.NoError(t, joiner.WriteLine(line))
	}
	require.NoError(t, joiner.Close())
	return buf.String()
}

// splitLines splits input into physical lines without their terminators,
// like reading it with bufio.Scanner would.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(input, "\n"), "\n")
}

func TestJoinerContinuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  string
	}{
		{
			name:  "continuation joins previous line",
			input: "foo\n  bar\nbaz\n",
			sep:   " ",
			want:  "foo bar\nbaz\n",
		},
		{
			name:  "tab counts as continuation",
			input: "foo\n\tbar\n",
			sep:   " ",
			want:  "foo bar\n",
		},
		{
			name:  "several continuations in one group",
			input: "a\n b\n c\n d\n",
			sep:   " ",
			want:  "a b c d\n",
		},
		{
			name:  "no continuations",
			input: "a\nb\nc\n",
			sep:   " ",
			want:  "a\nb\nc\n",
		},
		{
			name:  "custom separator",
			input: "a\n b\nc\n",
			sep:   ", ",
			want:  "a, b\nc\n",
		},
		{
			name:  "members are trimmed before joining",
			input: "a  \n   b\t\n",
			sep:   "|",
			want:  "a|b\n",
		},
		{
			name:  "group led by a continuation line",
			input: "  lonely\nnext\n",
			sep:   " ",
			want:  "lonely\nnext\n",
		},
		{
			name:  "blank lines are their own groups",
			input: "a\n\nb\n",
			sep:   " ",
			want:  "a\n\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinAll(t, tt.input, tt.sep))
		})
	}
}

func TestJoinerEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	joiner := NewJoiner(&buf, DefaultSeparator)
	require.NoError(t, joiner.Close())
	assert.Empty(t, buf.String())
}

func TestJoinerCloseFlushesPendingGroup(t *testing.T) {
	var buf bytes.Buffer
	joiner := NewJoiner(&buf, DefaultSeparator)
	require.NoError(t, joiner.WriteLine("foo"))
	require.NoError(t, joiner.WriteLine("  bar"))
	// Nothing is written until the group is complete
	assert.Empty(t, buf.String())
	require.NoError(t, joiner.Close())
	assert.Equal(t, "foo bar\n", buf.String())
}

func TestJoinerCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	joiner := NewJoiner(&buf, DefaultSeparator)
	require.NoError(t, joiner.WriteLine("foo"))
	require.NoError(t, joiner.Close())
	require.NoError(t, joiner.Close())
	assert.Equal(t, "foo\n", buf.String())
}

func TestJoinerWriteError(t *testing.T) {
	joiner := NewJoiner(failingWriter{}, DefaultSeparator)
	require.NoError(t, joiner.WriteLine("foo"))
	// The second non-continuation line flushes the first group, which fails
	err := joiner.WriteLine("bar")
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(b []byte) (int, error) {
	return 0, errors.New("write failed")
}
