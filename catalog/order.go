package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameOrder returns a less function for display ordering. Letters are
// compared alphabetically across case ("bsnes" sorts between "Apple" and
// "Zoom"), lowercase first on ties, with raw bytes as the last tiebreak so
// distinct strings never compare equal. The collator is not safe for
// concurrent use, so each sort gets its own.
func nameOrder() func(a, b string) bool {
	c := collate.New(language.Und)
	return func(a, b string) bool {
		if r := c.CompareString(a, b); r != 0 {
			return r < 0
		}
		return a < b
	}
}
