//go:build windows

package sanitize

var (
	invalidPathChars     = append([]rune{'"', '<', '>', '|'}, controlChars()...)
	invalidFileNameChars = append(
		[]rune{'"', '<', '>', '|', ':', '*', '?', '\\', '/'},
		controlChars()...,
	)
)

func controlChars() []rune {
	chars := make([]rune, 0, 32)
	for r := rune(0); r < 32; r++ {
		chars = append(chars, r)
	}
	return chars
}
