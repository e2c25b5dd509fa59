// Package normalize canonicalizes free-text team and participant names so
// that spelling variations of the same name compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes to NFD, drops combining marks and recomposes.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		return s
	}
	return out
}

// Team canonicalizes a team (or championship) name: accents folded, lower
// case, separators unified to hyphens, anything outside [a-z0-9-] dropped.
// Total function; invalid or empty input yields "".
//
//	Team("Atlético/MG")   == "atletico-mg"
//	Team("  São Paulo  ") == "sao-paulo"
func Team(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(foldAccents(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == '_':
			b.WriteByte('-')
		case unicode.IsSpace(r):
			b.WriteByte('-')
		case r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// Participant reduces a participant name to a directory-safe identifier:
// accents folded, every non-alphanumeric character dropped, case preserved.
//
//	Participant("João da Silva Jr.") == "JoaodaSilvaJr"
func Participant(name string) string {
	name = foldAccents(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
