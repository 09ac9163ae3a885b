package preprocess

import "strings"

// Sanitize drops invalid UTF-8 bytes, NUL, DEL, C1 controls, and ASCII
// controls other than newline, carriage return and tab. Raw tweets arrive
// with all of these; scrub before splitting or storing
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return r
		}
		if r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}
