// Package cli — output.go holds the human-readable and JSON printers used by
// the generate and estimate commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/shinji-kodama/humanizer/internal/config"
	"github.com/shinji-kodama/humanizer/internal/wordlist"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	bannerRule  = strings.Repeat("#", 54)
	summaryTail = strings.Repeat(" ", 10)
)

// printBanner shows the request before the confirmation prompt.
func printBanner(w io.Writer, s config.Settings, c wordlist.Capacity) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(" +++ Humanizer - Generator for Realistic Passwords +++"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, bannerRule)
	fmt.Fprintf(w, "  + Keywords:    %s\n", strings.Join(s.Keywords, ","))
	fmt.Fprintf(w, "  + Output File: %s\n", s.OutputFilename)
	fmt.Fprintf(w, "  + Year From:   %d\n", s.Years.From)
	fmt.Fprintf(w, "  + Year To:     %d\n", s.Years.To)
	fmt.Fprintf(w, "  + Pool:        %s\n", s.Policy)
	fmt.Fprintf(w, "  + Estimated:   %s lines\n", formatCount(c.Lines))
	fmt.Fprintln(w, bannerRule)
}

// printGenerateResult outputs the generate results in text or JSON format.
func printGenerateResult(w io.Writer, r *wordlist.Result, elapsed time.Duration, progressShown bool) {
	if IsJSONOutput() {
		printGenerateResultJSON(w, r, elapsed)
	} else {
		printGenerateResultText(w, r, elapsed, progressShown)
	}
}

// printGenerateResultJSON outputs the generate result as structured JSON.
func printGenerateResultJSON(w io.Writer, r *wordlist.Result, elapsed time.Duration) {
	type resultJSON struct {
		*wordlist.Result
		ElapsedMillis int64 `json:"elapsedMs"`
	}

	data, _ := json.MarshalIndent(resultJSON{Result: r, ElapsedMillis: elapsed.Milliseconds()}, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printGenerateResultText outputs the generate result as human-readable text.
func printGenerateResultText(w io.Writer, r *wordlist.Result, elapsed time.Duration, progressShown bool) {
	if progressShown {
		// Return to the start of the progress line before overwriting it.
		fmt.Fprint(w, "\r")
	}
	fmt.Fprintf(w, "Done, generated %s passwords in total!%s\n", humanize.Comma(int64(r.Written)), summaryTail)
	fmt.Fprintf(w, " ==> Output saved to `%s`\n", r.OutputPath)
	fmt.Fprintf(w, "Time needed: %s\n", elapsed.Round(time.Millisecond))
}

// formatCount renders a count with thousands separators. Estimates can
// exceed the int64 range that humanize.Comma accepts.
func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
	return humanize.Comma(int64(n))
}
