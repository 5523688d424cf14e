package mutate

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shinji-kodama/humanizer/internal/model"
)

// MaxMaskBits is the longest word, in runes, whose case variations can be
// enumerated with a 64-bit mask. Anything this long is already far beyond
// what can be written to disk; the CLI applies a much lower cap.
const MaxMaskBits = 62

// VariationCount returns 2^length, the number of case variations of a word
// with length runes. Returns an error wrapping model.ErrKeywordTooLong when
// length exceeds MaxMaskBits.
func VariationCount(length int) (uint64, error) {
	if length > MaxMaskBits {
		return 0, fmt.Errorf("%w: %d characters (limit %d)", model.ErrKeywordTooLong, length, MaxMaskBits)
	}
	return uint64(1) << uint(length), nil
}

// EachVariation calls fn once for every case variation of word, in mask
// order 0..2^L-1. Bit i of the mask upper-cases rune i; a clear bit leaves
// the rune untouched. Runes without an upper-case form still take part in
// the mask, so such words produce repeated variations.
func EachVariation(word string, fn func(variation string)) error {
	runes := []rune(word)
	count, err := VariationCount(len(runes))
	if err != nil {
		return err
	}

	upper := upperRunes(runes)
	buf := make([]rune, len(runes))
	for mask := uint64(0); mask < count; mask++ {
		for i, r := range runes {
			if mask&(uint64(1)<<uint(i)) != 0 {
				buf[i] = upper[i]
			} else {
				buf[i] = r
			}
		}
		fn(string(buf))
	}
	return nil
}

// upperRunes returns the upper-case form of every rune. When the full
// upper-case mapping expands to several runes ("ß" -> "SS") only the first
// one is kept, so a variation always has as many runes as the word.
func upperRunes(runes []rune) []rune {
	caser := cases.Upper(language.Und)
	upper := make([]rune, len(runes))
	for i, r := range runes {
		upper[i] = r
		if u, size := utf8.DecodeRuneInString(caser.String(string(r))); size > 0 {
			upper[i] = u
		}
	}
	return upper
}
