// Package cli implements the cobra-based CLI commands for humanizer.
//
// The root command itself generates a wordlist (generate.go). The estimate
// subcommand predicts the size of a run without writing anything
// (estimate.go). This file defines the root command, the global flags and
// the error/exit-code handling shared by every command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/humanizer/internal/model"
)

// Global flag variables shared across all commands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, the banner and progress line are suppressed and results
	// and errors are printed as JSON objects.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// logger is rebuilt from the verbose flag before every command runs.
	logger = zap.NewNop()
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// Running it without a subcommand generates a wordlist.
func NewRootCommand() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "humanizer",
		Short: "Generator for realistic, human-styled password wordlists",
		Long: `humanizer expands a few memorable keywords into every variant a person
might plausibly use as a password: leetspeak substitutions, every upper/lower
case pattern, and a year or special character appended or inserted at every
position. The result is streamed to a wordlist file, one candidate per line.

The output file is replaced on every run. A confirmation prompt is shown
before anything is written unless --yes is given.

Examples:
  humanizer -k acme,rocket -o acme.txt
  humanizer -k acme -o acme.txt -f 2015 -t 2020 --yes
  humanizer --config audit.yaml --reset-pool
  humanizer estimate -k acme,rocket`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Args: cobra.NoArgs,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRunE runs before the root command and every
		// subcommand, so the logger is ready wherever VerboseLog is used.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	flags.bind(rootCmd)
	rootCmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the progress line")

	rootCmd.AddCommand(NewEstimateCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit code. Other errors are classified
// by the sentinel they wrap (see model.ExitCodeFor).
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitCodeFor(err)))
	}
}

// newLogger builds a development console logger at debug level when
// verbose is set, and a no-op logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog writes a debug message through the command logger. It prints
// nothing unless --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	logger.Sugar().Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Commands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
