package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify derives a lowercase, hyphen-separated id from a display name.
// Letters and digits of any script are kept; everything else but spaces,
// underscores and hyphens is dropped.
func Slugify(text string) string {
	s := strings.TrimSpace(cases.Lower(language.Und).String(text))

	var sb strings.Builder
	sep := false
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			sep = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			if sep && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sep = false
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return "template"
	}
	return sb.String()
}
