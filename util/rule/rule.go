package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
	DEL  byte = 0x7F
)

// IsValidFieldName reports whether s is usable as a header field name:
// non-empty, with no control characters, space, or colon. This is
// looser than the RFC 9110 token grammar; names are matched and
// stored here, never parsed.
func IsValidFieldName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == DEL || c == SP || c == ':' {
			return false
		}
	}
	return true
}

// IsValidFieldValue reports whether s is usable as a header field
// value. A line break (CR, LF, or a CRLF pair counted as one break)
// is only allowed when immediately followed by SP or HTAB, forming an
// obsolete folded continuation.
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5.2
func IsValidFieldValue(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != CR && c != LF {
			continue
		}

		next := i + 1
		if c == CR && next < len(s) && s[next] == LF {
			next++
		}
		if next >= len(s) || (s[next] != SP && s[next] != HTAB) {
			return false
		}

		i = next
	}
	return true
}

// FoldName lowercases ASCII letters in s, leaving every other byte
// untouched. It is the single comparison path for case-insensitive
// field name matching.
func FoldName(s string) string {
	const capitalDiff = 'a' - 'A'
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + capitalDiff
		}
	}
	return string(b)
}
