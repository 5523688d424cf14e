// Package wordlist runs a complete generation: it feeds every keyword
// through the mutate pipeline, accumulates the results in a Pool and streams
// them to the output file through a Sink.
//
// A run is single-threaded and synchronous. Memory grows with the keyword
// count, the year range width and 2^(keyword length); callers are expected
// to bound the keyword length (Options.MaxKeywordLength) and can predict the
// output size up front with Estimate.
package wordlist
