// Package cli — prompt.go implements the interactive confirmation shown
// before a wordlist is generated.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptContinue asks whether to continue and keeps asking until the answer
// is "y", "n" or empty (case-insensitive, surrounding whitespace ignored).
// Empty means no. Any other answer is reported and the prompt is shown
// again. A closed input counts as no.
func promptContinue(in io.Reader, out io.Writer) (bool, error) {
	// One scanner for the whole dialog, so lines buffered ahead of a
	// rejected answer are not lost.
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "Continue? (y/N): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, err
			}
			fmt.Fprintln(out)
			return false, nil
		}

		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch answer {
		case "y":
			return true, nil
		case "n", "":
			return false, nil
		default:
			fmt.Fprintf(out, "Invalid input: %s\n", answer)
		}
	}
}
