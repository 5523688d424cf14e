package wordlist

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/shinji-kodama/humanizer/internal/model"
	"github.com/shinji-kodama/humanizer/internal/mutate"
)

// Reporter receives a notification after every generated entry written to
// the output file. count is the running total of generated entries written
// so far (original keyword lines are not counted).
type Reporter interface {
	Progress(count int, current string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(count int, current string)

// Progress calls f(count, current).
func (f ReporterFunc) Progress(count int, current string) {
	f(count, current)
}

type nopReporter struct{}

func (nopReporter) Progress(int, string) {}

// Options configures a Generator.
type Options struct {
	// Years is the inclusive range of years injected into every variation.
	Years model.YearRange

	// Specials is the ordered special character set. Nil means
	// model.DefaultSpecialChars. Duplicates are kept.
	Specials []rune

	// Policy decides whether the pool is kept across keywords.
	// Empty means model.PoolCumulative.
	Policy model.PoolPolicy

	// MaxKeywordLength caps the rune length of every keyword. Zero disables
	// the cap; mutate.MaxMaskBits still applies.
	MaxKeywordLength int

	// Reporter is notified of every written entry. Nil disables reporting.
	Reporter Reporter

	// Logger receives debug events. Nil means zap.NewNop().
	Logger *zap.Logger
}

// Result summarizes a finished run.
type Result struct {
	// OutputPath is the file the wordlist was written to.
	OutputPath string `json:"outputFilename"`

	// Keywords is the number of keywords processed.
	Keywords int `json:"keywords"`

	// Written is the number of generated entries written, counting an entry
	// again every time a cumulative pool re-emits it.
	Written int `json:"written"`

	// Lines is the number of lines in the output file: Written plus one
	// original keyword line per keyword.
	Lines int `json:"lines"`

	// PoolSize is the number of entries left in the pool at the end.
	PoolSize int `json:"poolSize"`

	// Policy is the pool policy the run used.
	Policy model.PoolPolicy `json:"poolPolicy"`
}

// Generator turns keywords into a wordlist file.
type Generator struct {
	opts          Options
	yearTokens    []string
	specialTokens []string
	reporter      Reporter
	logger        *zap.Logger
}

// NewGenerator validates opts and prepares the injection tokens.
// Returns an error wrapping model.ErrInvalidYearRange for an inverted year
// range, or model.ErrInvalidConfig for an unknown pool policy.
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.Years.Validate(); err != nil {
		return nil, err
	}
	if opts.Policy == "" {
		opts.Policy = model.PoolCumulative
	}
	if !opts.Policy.IsValid() {
		return nil, fmt.Errorf("%w: unknown pool policy %q", model.ErrInvalidConfig, opts.Policy)
	}
	if opts.MaxKeywordLength < 0 {
		return nil, fmt.Errorf("%w: max keyword length must not be negative", model.ErrInvalidConfig)
	}

	specials := opts.Specials
	if specials == nil {
		specials = model.DefaultSpecialChars
	}

	g := &Generator{
		opts:          opts,
		yearTokens:    opts.Years.Tokens(),
		specialTokens: model.SpecialTokens(specials),
		reporter:      opts.Reporter,
		logger:        opts.Logger,
	}
	if g.reporter == nil {
		g.reporter = nopReporter{}
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g, nil
}

// ValidateKeywords checks the keyword list without touching the filesystem:
// it must not be empty, every keyword must be valid UTF-8, and no keyword
// may exceed the length cap.
// Substitution maps runes one to one, so the raw length is the length that
// gets enumerated.
func (g *Generator) ValidateKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return model.ErrNoKeywords
	}
	for _, kw := range keywords {
		if !utf8.ValidString(kw) {
			return fmt.Errorf("%w: keyword %q is not valid UTF-8", model.ErrInvalidConfig, kw)
		}
		n := utf8.RuneCountInString(kw)
		if g.opts.MaxKeywordLength > 0 && n > g.opts.MaxKeywordLength {
			return fmt.Errorf("%w: %q has %d characters (limit %d)",
				model.ErrKeywordTooLong, kw, n, g.opts.MaxKeywordLength)
		}
		if _, err := mutate.VariationCount(n); err != nil {
			return fmt.Errorf("keyword %q: %w", kw, err)
		}
	}
	return nil
}

// Run generates the wordlist for keywords into outputPath.
//
// The run follows three phases:
//  1. Setup: validate the keywords, then replace outputPath with an empty file.
//  2. For every keyword: substitute, enumerate the case variations, inject
//     every year and special character into each variation, then write the
//     first keyword verbatim followed by every entry currently in the pool.
//  3. Completion: close the file and return the totals.
//
// Any error aborts the run. The output file is always closed, and may be
// left partially written.
func (g *Generator) Run(keywords []string, outputPath string) (result *Result, err error) {
	if err := g.ValidateKeywords(keywords); err != nil {
		return nil, err
	}

	sink, err := CreateSink(outputPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			result = nil
		}
	}()
	g.logger.Debug("output file created", zap.String("path", sink.Path()))

	original := keywords[0]
	pool := NewPool()
	written := 0

	for _, keyword := range keywords {
		if g.opts.Policy == model.PoolReset {
			pool.Reset()
		}

		word := mutate.Substitute(keyword)
		before := pool.Len()
		variations := 0
		err := mutate.EachVariation(word, func(variation string) {
			variations++
			pool.AddVariation(variation, g.yearTokens)
			pool.AddVariation(variation, g.specialTokens)
		})
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", keyword, err)
		}
		g.logger.Debug("keyword expanded",
			zap.String("keyword", keyword),
			zap.String("substituted", word),
			zap.Int("variations", variations),
			zap.Int("added", pool.Len()-before),
			zap.Int("pool", pool.Len()))

		if err := sink.WriteLine(original); err != nil {
			return nil, err
		}
		for _, entry := range pool.Entries() {
			if err := sink.WriteLine(entry); err != nil {
				return nil, err
			}
			written++
			g.reporter.Progress(written, entry)
		}
	}

	result = &Result{
		OutputPath: sink.Path(),
		Keywords:   len(keywords),
		Written:    written,
		Lines:      sink.Lines(),
		PoolSize:   pool.Len(),
		Policy:     g.opts.Policy,
	}
	g.logger.Debug("generation finished",
		zap.Int("written", result.Written),
		zap.Int("lines", result.Lines))
	return result, nil
}
