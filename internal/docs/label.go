package docs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatLabel turns a hyphenated file or directory name into a display label.
// Each hyphen-separated token gets an upper-cased first rune and the tokens
// are joined with single spaces. The remainder of a token is left as is, so
// "faq" becomes "Faq" rather than "FAQ".
func FormatLabel(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
