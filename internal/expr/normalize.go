package expr

import (
	"strings"
	"unicode"
)

// Normalize lowercases formula, strips whitespace, rewrites ** as ^ and the
// d / div division spellings as /. Function names are copied through
// untouched, so round(x) keeps its d. Normalize is idempotent.
func Normalize(formula string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, formula)
	s = strings.ReplaceAll(s, "**", "^")

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if name, ok := functionAt(s[i:]); ok {
			b.WriteString(name)
			i += len(name)
			continue
		}
		switch {
		case strings.HasPrefix(s[i:], "div"):
			b.WriteByte('/')
			i += 3
		case s[i] == 'd':
			b.WriteByte('/')
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
