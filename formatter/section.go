package formatter

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionFill is the rule character.
const SectionFill = "="

// SectionTitle returns " [ NAME ] " with name fully upper-cased.
func SectionTitle(name string) string {
	// cases.Caser is stateful; one per call.
	return " [ " + cases.Upper(language.Und).String(name) + " ] "
}

// SectionLine returns an unstyled rule. An empty name yields exactly
// width fill characters (none when width <= 0). A named rule is centred
// around SectionTitle(name) and grows past width when needed so that at
// least two fill characters remain on each side; the right side takes
// the odd character. Widths are counted in runes.
func SectionLine(name string, width int) string {
	if name == "" {
		if width <= 0 {
			return ""
		}
		return strings.Repeat(SectionFill, width)
	}

	title := SectionTitle(name)
	titleLen := utf8.RuneCountInString(title)
	total := max(width, titleLen+4)
	remaining := total - titleLen

	left := remaining / 2
	right := remaining - left

	return strings.Repeat(SectionFill, left) + title + strings.Repeat(SectionFill, right)
}
