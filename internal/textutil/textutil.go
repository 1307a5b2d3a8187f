// Package textutil contains small text helpers shared by the filters.
package textutil

import (
	"fmt"
	"strings"
)

// SanitizeLine cleans up an input line: everything from the first commenter
// byte onward is removed, then surrounding whitespace is trimmed.  There is
// no escaping, the commenter always introduces a comment.
func SanitizeLine(line string, commenter byte) string {
	if i := strings.IndexByte(line, commenter); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// Truncate shortens s to at most width runes, replacing the tail with an
// ellipsis when something was cut off.  Strings already within the limit are
// returned unchanged.
func Truncate(s string, width int) string {
	const ellipsis = '…'
	if width < 1 {
		width = 1
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + string(ellipsis)
}

var sizePrefixes = [...]string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// FormatSize formats a byte count in a human-readable manner (k, M, G, ...),
// using a factor of 1024 per magnitude.
func FormatSize(n int64) string {
	value := float64(n)
	i := 0
	for value >= 1024 && i < len(sizePrefixes)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.0f%sB", value, sizePrefixes[i])
}
