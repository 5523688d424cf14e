package mutate

import "strings"

// pair is one entry of the substitution table: every occurrence of classic
// is replaced with alternative.
type pair struct {
	alternative rune
	classic     rune
}

// defaultTable is the leetspeak table. Replacements are sequential, so the
// order is part of the contract: the "1→I" pair turns "I" into "1", and the
// "!→1" pair that follows turns every "1" (including those) into "!".
var defaultTable = []pair{
	{alternative: '@', classic: 'a'},
	{alternative: '4', classic: 'A'},
	{alternative: '1', classic: 'I'},
	{alternative: '!', classic: '1'},
	{alternative: '0', classic: 'o'},
	{alternative: '5', classic: 'S'},
	{alternative: '3', classic: 'E'},
	{alternative: '7', classic: 'T'},
	{alternative: '$', classic: 'S'},
	{alternative: '2', classic: 'Z'},
	{alternative: '8', classic: 'B'},
}

// Substitute applies the leetspeak table to keyword.
//
// For every pair, in table order, three replacements run against the
// current string: "i" → "1", "e" → "3", then classic → alternative.
// The "i" and "e" passes are repeated once per pair; after the first pair
// they find nothing left to replace.
//
// Every replacement maps one rune to one rune, so the result always has the
// same rune count as the input.
func Substitute(keyword string) string {
	for _, p := range defaultTable {
		keyword = strings.ReplaceAll(keyword, "i", "1")
		keyword = strings.ReplaceAll(keyword, "e", "3")
		keyword = strings.ReplaceAll(keyword, string(p.classic), string(p.alternative))
	}
	return keyword
}
