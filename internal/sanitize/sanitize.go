// Package sanitize strips characters the host filesystem refuses in paths
// and file names from user supplied strings.
package sanitize

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Path removes every character that is invalid anywhere in a path.
func Path(s string) string {
	return strip(s, invalidPathChars)
}

// FileName removes every character that is invalid in a single file or
// directory name, including path separators.
func FileName(s string) string {
	return strip(s, invalidFileNameChars)
}

// InvalidPathChars returns a copy of the characters Path removes.
func InvalidPathChars() []rune {
	return slices.Clone(invalidPathChars)
}

// InvalidFileNameChars returns a copy of the characters FileName removes.
func InvalidFileNameChars() []rune {
	return slices.Clone(invalidFileNameChars)
}

// strip keeps undecodable bytes as they are so the result is always a
// subsequence of the input.
func strip(s string, invalid []rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !slices.Contains(invalid, r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
