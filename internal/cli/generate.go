// Package cli — generate.go implements the root "humanizer" command.
//
// Orchestration steps:
//  1. Resolve settings: defaults, profile (--config), environment, flags
//  2. Validate everything that can be checked without touching the disk
//  3. Estimate the output size and print the banner
//  4. Ask for confirmation (unless --yes)
//  5. Generate the wordlist, printing a progress line
//  6. Output the summary (text or JSON)
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/humanizer/internal/config"
	"github.com/shinji-kodama/humanizer/internal/model"
	"github.com/shinji-kodama/humanizer/internal/wordlist"
)

// settingsFlags holds the flags shared by every command that needs a
// generation request. They are bound to cobra flags in bind.
type settingsFlags struct {
	keywords         string // --keywords: comma-separated keyword list
	outputFilename   string // --output-filename: destination file
	fromYear         int    // --from-year: first injected year
	toYear           int    // --to-year: last injected year
	resetPool        bool   // --reset-pool: clear the pool between keywords
	maxKeywordLength int    // --max-keyword-length: cap, 0 disables
	configPath       string // --config: YAML or JSONC profile
}

// generateFlags adds the flags that only make sense for an actual run.
type generateFlags struct {
	settingsFlags
	yes   bool // --yes: skip the confirmation prompt
	quiet bool // --quiet: no progress line
}

// bind registers the settings flags on cmd.
func (f *settingsFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.keywords, "keywords", "k", "", "Comma-separated keywords (the first one is written verbatim before every batch)")
	cmd.Flags().StringVarP(&f.outputFilename, "output-filename", "o", "", "Output wordlist file (replaced on every run)")
	cmd.Flags().IntVarP(&f.fromYear, "from-year", "f", model.DefaultFromYear, "First year to inject")
	cmd.Flags().IntVarP(&f.toYear, "to-year", "t", model.DefaultToYear, "Last year to inject")
	cmd.Flags().BoolVar(&f.resetPool, "reset-pool", false, "Clear generated passwords between keywords instead of re-emitting them")
	cmd.Flags().IntVar(&f.maxKeywordLength, "max-keyword-length", config.DefaultMaxKeywordLength, "Reject keywords longer than this (0 disables the cap)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML or JSONC profile with default settings")
}

// resolve merges every settings source. Only flags explicitly given on the
// command line override the profile and the environment.
func (f *settingsFlags) resolve(cmd *cobra.Command) (config.Settings, error) {
	settings := config.Defaults()

	if f.configPath != "" {
		profile, err := config.LoadProfile(f.configPath)
		if err != nil {
			return settings, err
		}
		settings.Apply(profile)
		VerboseLog("Loaded profile: %s", f.configPath)
	}

	envLayer, err := config.LoadEnv(config.DefaultDotEnv)
	if err != nil {
		return settings, err
	}
	settings.Apply(envLayer)

	var flagLayer config.Layer
	flags := cmd.Flags()
	if flags.Changed("keywords") {
		flagLayer.Keywords = model.ParseKeywords(f.keywords)
	}
	if flags.Changed("output-filename") {
		flagLayer.OutputFilename = f.outputFilename
	}
	if flags.Changed("from-year") {
		flagLayer.FromYear = &f.fromYear
	}
	if flags.Changed("to-year") {
		flagLayer.ToYear = &f.toYear
	}
	if flags.Changed("reset-pool") {
		flagLayer.ResetPool = &f.resetPool
	}
	if flags.Changed("max-keyword-length") {
		flagLayer.MaxKeywordLength = &f.maxKeywordLength
	}
	settings.Apply(flagLayer)

	VerboseLog("Resolved settings: keywords=%v output=%q years=%s policy=%s max-length=%d",
		settings.Keywords, settings.OutputFilename, settings.Years, settings.Policy, settings.MaxKeywordLength)
	return settings, nil
}

// runGenerate is the main orchestration function for the root command.
func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	start := time.Now()
	out := cmd.OutOrStdout()

	// Step 1-2: Resolve and validate. Nothing has been printed or written yet.
	settings, err := flags.resolve(cmd)
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}
	if err := settings.Validate(true); err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}

	var progress *progressPrinter
	opts := wordlist.Options{
		Years:            settings.Years,
		Policy:           settings.Policy,
		MaxKeywordLength: settings.MaxKeywordLength,
		Logger:           logger,
	}
	if !flags.quiet && !IsJSONOutput() {
		progress = &progressPrinter{w: out}
		opts.Reporter = progress
	}

	gen, err := wordlist.NewGenerator(opts)
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}
	if err := gen.ValidateKeywords(settings.Keywords); err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}

	// Step 3: Banner with the predicted size.
	capacity, err := wordlist.Estimate(settings.Keywords, settings.Years, nil, settings.Policy)
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "invalid configuration", err)
	}
	if !IsJSONOutput() {
		printBanner(out, settings, capacity)
	}

	// Step 4: Confirmation. In JSON mode the prompt goes to stderr so that
	// stdout only carries the result object.
	if !flags.yes {
		promptOut := out
		if IsJSONOutput() {
			promptOut = cmd.ErrOrStderr()
		}
		confirmed, err := promptContinue(cmd.InOrStdin(), promptOut)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to read user input", err)
		}
		if !confirmed {
			fmt.Fprintln(promptOut, "Quitting..")
			return nil
		}
	}

	// Step 5: Generate.
	VerboseLog("Generating %d keyword(s) into %s", len(settings.Keywords), settings.OutputFilename)
	result, err := gen.Run(settings.Keywords, settings.OutputFilename)
	if err != nil {
		return model.WrapCLIError(model.ExitCodeFor(err), "password generation failed", err)
	}

	// Step 6: Output results.
	printGenerateResult(out, result, time.Since(start), progress != nil)
	return nil
}

// progressLinePadding clears leftovers of a longer previous entry.
var progressLinePadding = strings.Repeat(" ", 20)

// progressPrinter rewrites a single status line after every written entry.
type progressPrinter struct {
	w io.Writer
}

// Progress satisfies wordlist.Reporter.
func (p *progressPrinter) Progress(count int, current string) {
	fmt.Fprintf(p.w, "\r%d passwords generated,current: %s%s", count, current, progressLinePadding)
}
