// Package lookup decides what the Quote Lookup input means.
package lookup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSymbolLen is the longest input treated as a ticker symbol.
const MaxSymbolLen = 5

// SearchLimit is how many matches the lookup page asks for.
const SearchLimit = 5

// Plan says which calls an input triggers. Both may be set: "A B C" is
// searched and also looked up directly.
type Plan struct {
	Search bool
	Symbol string
}

// Empty reports whether the input triggers nothing.
func (p Plan) Empty() bool {
	return !p.Search && p.Symbol == ""
}

// Resolve applies the disambiguation rules to raw input, untrimmed:
//   - search when longer than 2 characters and containing a space, or longer
//     than 1 character and not upper-case;
//   - direct lookup when upper-case and at most MaxSymbolLen characters.
func Resolve(query string) Plan {
	if query == "" {
		return Plan{}
	}
	n := utf8.RuneCountInString(query)
	upper := IsUpper(query)

	var p Plan
	p.Search = (n > 2 && strings.Contains(query, " ")) || (n > 1 && !upper)
	if upper && n <= MaxSymbolLen {
		p.Symbol = strings.ToUpper(query)
	}
	return p
}

// Force returns the symbol for an explicit look-up request, or "".
func Force(query string) string {
	return strings.ToUpper(query)
}

// IsUpper reports whether s has at least one cased letter and no lower-case
// or title-case letters. Digits and punctuation are ignored.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
