// Package cli — estimate.go implements the "humanizer estimate" command.
//
// The estimate command predicts how many entries and lines a run would
// produce with the same settings, without prompting and without touching the
// output file. It is the quickest way to check that a keyword list and year
// range stay within what the disk (and memory) can hold.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/humanizer/internal/config"
	"github.com/shinji-kodama/humanizer/internal/model"
	"github.com/shinji-kodama/humanizer/internal/wordlist"
)

// NewEstimateCommand creates the "estimate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewEstimateCommand() *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Predict the size of a wordlist without generating it",
		Long: `Predict how many passwords and lines a run would write.

The estimate accepts the same settings as a normal run (flags, --config
profile, HUMANIZER_* environment variables). The output file is optional
and is never touched.

Examples:
  humanizer estimate -k acme,rocket
  humanizer estimate -k acme -f 2000 -t 2025 --reset-pool
  humanizer estimate --config audit.yaml --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, flags)
		},
	}

	flags.bind(cmd)
	return cmd
}

// runEstimate resolves the settings and prints the predicted capacity.
func runEstimate(cmd *cobra.Command, flags *settingsFlags) error {
	settings, err := flags.resolve(cmd)
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}
	if err := settings.Validate(false); err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}

	gen, err := wordlist.NewGenerator(wordlist.Options{
		Years:            settings.Years,
		Policy:           settings.Policy,
		MaxKeywordLength: settings.MaxKeywordLength,
		Logger:           logger,
	})
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}
	if err := gen.ValidateKeywords(settings.Keywords); err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}

	capacity, err := wordlist.Estimate(settings.Keywords, settings.Years, nil, settings.Policy)
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}

	printEstimateResult(cmd.OutOrStdout(), settings, capacity)
	return nil
}

// printEstimateResult outputs the estimate in text or JSON format.
func printEstimateResult(w io.Writer, s config.Settings, c wordlist.Capacity) {
	if IsJSONOutput() {
		printEstimateResultJSON(w, s, c)
	} else {
		printEstimateResultText(w, s, c)
	}
}

// printEstimateResultJSON outputs the estimate as structured JSON.
func printEstimateResultJSON(w io.Writer, s config.Settings, c wordlist.Capacity) {
	type estimateJSON struct {
		wordlist.Capacity
		FromYear   int              `json:"fromYear"`
		ToYear     int              `json:"toYear"`
		PoolPolicy model.PoolPolicy `json:"poolPolicy"`
	}

	data, _ := json.MarshalIndent(estimateJSON{
		Capacity:   c,
		FromYear:   s.Years.From,
		ToYear:     s.Years.To,
		PoolPolicy: s.Policy,
	}, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printEstimateResultText outputs the estimate as human-readable text.
func printEstimateResultText(w io.Writer, s config.Settings, c wordlist.Capacity) {
	fmt.Fprintf(w, "Estimate for %d keyword(s), years %s, %s pool\n", c.Keywords, s.Years, s.Policy)
	fmt.Fprintf(w, "  Passwords: %s\n", formatCount(c.Written))
	fmt.Fprintf(w, "  Lines:     %s\n", formatCount(c.Lines))
	fmt.Fprintf(w, "  Peak pool: %s\n", formatCount(c.PoolSize))
}
