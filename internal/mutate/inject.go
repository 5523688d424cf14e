package mutate

// Inject appends to dst every placement of token in variation and returns
// the extended slice.
//
// For a variation of n runes it produces exactly n+1 entries: first the
// token appended at the end, then the token inserted before rune k for
// k = 0..n-1. Inserting after the last rune is the same string as the
// append case and is not produced twice.
func Inject(dst []string, variation, token string) []string {
	dst = append(dst, variation+token)
	// Ranging over a string yields the byte offset of each rune start,
	// which are exactly the interior split points.
	for i := range variation {
		dst = append(dst, variation[:i]+token+variation[i:])
	}
	return dst
}

// InjectAll runs Inject for every token, in order.
func InjectAll(dst []string, variation string, tokens []string) []string {
	for _, token := range tokens {
		dst = Inject(dst, variation, token)
	}
	return dst
}
