// Package model defines the domain types and value objects for the
// humanizer CLI.
//
// This package contains pure data structures with no external dependencies:
// the inclusive year range, the special character set, the pool policy and
// keyword list parsing. They are shared by the generation engine
// (internal/mutate, internal/wordlist) and the command layer (internal/cli).
//
// The package also defines exit codes (ExitCode), the sentinel errors used to
// classify failures, and a custom error type (CLIError) that carries an exit
// code for proper OS process exit handling.
package model
