//go:build !windows

package sanitize

var (
	invalidPathChars     = []rune{0}
	invalidFileNameChars = []rune{0, '/'}
)
