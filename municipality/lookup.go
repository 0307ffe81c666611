package municipality

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName folds a place name to the form used by the postal tables:
// accents stripped, upper case, hyphens and apostrophes turned into single
// spaces. "Saint-Étienne" and "SAINT ETIENNE" normalise identically.
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = strings.Map(func(r rune) rune {
		switch r {
		case '-', '\'', '’':
			return ' '
		}

		return unicode.ToUpper(r)
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}

// Lookup resolves user input to a municipality. Input starting with a
// digit is an INSEE code (a four-digit code gets its leading zero back);
// anything else is matched against postal names with NormalizeName.
func (a *Atlas) Lookup(input string) (*Municipality, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrNotFound)
	}
	if unicode.IsDigit(rune(input[0])) {
		if m, ok := a.byINSEE.Get(NormalizeINSEE(input)); ok {
			return m, nil
		}

		return nil, fmt.Errorf("%w: INSEE code %q", ErrNotFound, input)
	}
	if m, ok := a.byName.Get(NormalizeName(input)); ok {
		return m, nil
	}

	return nil, fmt.Errorf("%w: name %q", ErrNotFound, input)
}
