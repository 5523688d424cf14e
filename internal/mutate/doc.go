// Package mutate implements the string transformations that turn a keyword
// into humanized password candidates.
//
// The pipeline for one keyword is:
//
//	Substitute(keyword)            // leetspeak table, fixed order
//	  -> EachVariation(word, ...)  // 2^L upper/lower case patterns
//	    -> Inject(dst, v, token)   // token appended + inserted at every position
//
// All functions are pure and allocation is proportional to their output.
// Positions and lengths are counted in runes, so multi-byte keywords never
// get split in the middle of a character.
package mutate
