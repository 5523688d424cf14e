package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for broad classification. Packages wrap them with
// fmt.Errorf("...: %w") so the CLI layer can pick an exit code with
// errors.Is, without knowing which package produced the failure.
var (
	// ErrInvalidConfig marks any configuration problem detected before
	// generation starts (bad profile file, missing output path, ...).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidYearRange is returned when the first year of a range is
	// bigger than the last one.
	ErrInvalidYearRange = errors.New("invalid year range")

	// ErrNoKeywords is returned when the keyword list is empty after parsing.
	ErrNoKeywords = errors.New("no keywords given")

	// ErrKeywordTooLong is returned when a keyword has more characters than
	// the case variation enumeration is allowed to handle.
	ErrKeywordTooLong = errors.New("keyword too long")

	// ErrOutput marks a failure to delete, create, write, flush or close the
	// output file. The wrapping message always names the path.
	ErrOutput = errors.New("output file error")
)

// Default year bounds, matching the historical behavior of the tool.
const (
	DefaultFromYear = 1990
	DefaultToYear   = 2025
)

// YearRange is an inclusive, closed interval of years [From, To].
// Callers check From <= To with Validate before enumerating it.
type YearRange struct {
	From int `json:"fromYear" yaml:"fromYear"`
	To   int `json:"toYear" yaml:"toYear"`
}

// Validate checks the From <= To invariant.
func (r YearRange) Validate() error {
	if r.From > r.To {
		return fmt.Errorf("%w: %d cannot be bigger than %d", ErrInvalidYearRange, r.From, r.To)
	}
	return nil
}

// Len returns the number of years in the range, or 0 for an invalid range.
func (r YearRange) Len() int {
	if r.From > r.To {
		return 0
	}
	return r.To - r.From + 1
}

// Years returns every year of the range in strictly ascending order.
func (r YearRange) Years() []int {
	years := make([]int, 0, r.Len())
	for y := r.From; y <= r.To; y++ {
		years = append(years, y)
	}
	return years
}

// Tokens renders each year as decimal text, ready for injection.
func (r YearRange) Tokens() []string {
	years := r.Years()
	tokens := make([]string, len(years))
	for i, y := range years {
		tokens[i] = strconv.Itoa(y)
	}
	return tokens
}

// String returns the range as "from-to".
func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// DefaultSpecialChars is the fixed, ordered set of punctuation injected into
// every variation. The comma appears twice; both entries are kept, so every
// comma injection shows up twice in the generated output.
var DefaultSpecialChars = []rune{'!', '?', ',', ';', ',', '-', '_'}

// SpecialTokens renders a special character set as injection tokens,
// preserving order and duplicates.
func SpecialTokens(chars []rune) []string {
	tokens := make([]string, len(chars))
	for i, c := range chars {
		tokens[i] = string(c)
	}
	return tokens
}

// PoolPolicy controls whether the pool of generated passwords survives from
// one keyword to the next.
//
//   - PoolCumulative: the pool is never cleared. Every keyword's write phase
//     re-emits all entries produced for earlier keywords, so the number of
//     written lines grows super-linearly with the keyword count. This is the
//     historical behavior of the tool and the default.
//   - PoolReset: the pool is cleared before each keyword, so each keyword
//     writes only its own entries.
type PoolPolicy string

const (
	PoolCumulative PoolPolicy = "cumulative"
	PoolReset      PoolPolicy = "reset"
)

// String returns the string representation of PoolPolicy.
func (p PoolPolicy) String() string {
	return string(p)
}

// IsValid checks whether the PoolPolicy value is one of the predefined policies.
func (p PoolPolicy) IsValid() bool {
	switch p {
	case PoolCumulative, PoolReset:
		return true
	default:
		return false
	}
}

// PoolPolicyFor maps the --reset-pool switch to a PoolPolicy.
func PoolPolicyFor(reset bool) PoolPolicy {
	if reset {
		return PoolReset
	}
	return PoolCumulative
}

// ParseKeywords splits a comma-separated keyword list and trims whitespace
// around every entry. Entries that are empty after trimming are dropped.
// The order of the remaining keywords is preserved.
func ParseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// CleanKeywords trims every keyword of an already split list and drops
// empty entries. It is used for lists coming from profile files and the
// environment, which never pass through ParseKeywords.
func CleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// ExitCode defines standard CLI exit codes. These codes allow scripts to
// programmatically determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully, including
	// the case where the user declined the confirmation prompt.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidConfig indicates the arguments, profile or environment
	// could not be turned into a valid generation request.
	ExitInvalidConfig ExitCode = 2

	// ExitOutputFailed indicates the output file could not be replaced or
	// written. The file may be left truncated.
	ExitOutputFailed ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ExitCodeFor classifies an error by the sentinel it wraps.
// Configuration problems map to ExitInvalidConfig, output file problems to
// ExitOutputFailed, and everything else to ExitGeneralError.
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidYearRange),
		errors.Is(err, ErrNoKeywords),
		errors.Is(err, ErrKeywordTooLong):
		return ExitInvalidConfig
	case errors.Is(err, ErrOutput):
		return ExitOutputFailed
	default:
		return ExitGeneralError
	}
}
