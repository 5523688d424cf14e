package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/humanizer/internal/model"
)

// DefaultMaxKeywordLength caps keyword length unless overridden. 2^20 case
// variations per keyword already produce tens of millions of lines.
const DefaultMaxKeywordLength = 20

// Layer is one partial source of settings. Nil pointers and empty values
// mean "not set here", so a lower layer's value survives.
type Layer struct {
	// Keywords is the ordered keyword list. The first entry is the original
	// keyword written verbatim before every batch.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// OutputFilename is the wordlist destination.
	OutputFilename string `json:"outputFilename,omitempty" yaml:"outputFilename,omitempty"`

	// FromYear and ToYear bound the inclusive year range.
	FromYear *int `json:"fromYear,omitempty" yaml:"fromYear,omitempty"`
	ToYear   *int `json:"toYear,omitempty" yaml:"toYear,omitempty"`

	// ResetPool selects the reset pool policy when true.
	ResetPool *bool `json:"resetPool,omitempty" yaml:"resetPool,omitempty"`

	// MaxKeywordLength caps keyword length; 0 disables the cap.
	MaxKeywordLength *int `json:"maxKeywordLength,omitempty" yaml:"maxKeywordLength,omitempty"`
}

// Settings is the fully resolved configuration of a run.
type Settings struct {
	Keywords         []string
	OutputFilename   string
	Years            model.YearRange
	Policy           model.PoolPolicy
	MaxKeywordLength int
}

// Defaults returns the settings used when no source overrides them.
func Defaults() Settings {
	return Settings{
		Years:            model.YearRange{From: model.DefaultFromYear, To: model.DefaultToYear},
		Policy:           model.PoolCumulative,
		MaxKeywordLength: DefaultMaxKeywordLength,
	}
}

// Apply overrides every field that is set in l.
func (s *Settings) Apply(l Layer) {
	if kws := model.CleanKeywords(l.Keywords); len(kws) > 0 {
		s.Keywords = kws
	}
	if l.OutputFilename != "" {
		s.OutputFilename = l.OutputFilename
	}
	if l.FromYear != nil {
		s.Years.From = *l.FromYear
	}
	if l.ToYear != nil {
		s.Years.To = *l.ToYear
	}
	if l.ResetPool != nil {
		s.Policy = model.PoolPolicyFor(*l.ResetPool)
	}
	if l.MaxKeywordLength != nil {
		s.MaxKeywordLength = *l.MaxKeywordLength
	}
}

// Validate checks the settings before anything is prompted or written.
// requireOutput is false for read-only commands such as estimate.
func (s Settings) Validate(requireOutput bool) error {
	if len(s.Keywords) == 0 {
		return model.ErrNoKeywords
	}
	if requireOutput && strings.TrimSpace(s.OutputFilename) == "" {
		return fmt.Errorf("%w: output filename is required", model.ErrInvalidConfig)
	}
	if err := s.Years.Validate(); err != nil {
		return err
	}
	if s.MaxKeywordLength < 0 {
		return fmt.Errorf("%w: max keyword length must not be negative (got %d)", model.ErrInvalidConfig, s.MaxKeywordLength)
	}
	return nil
}

// LoadProfile reads a profile file and decodes it into a Layer.
// The format is chosen by file extension. Unknown fields are rejected so
// that typos do not silently fall back to defaults.
func LoadProfile(path string) (Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layer{}, fmt.Errorf("%w: profile not found: %s", model.ErrInvalidConfig, path)
		}
		return Layer{}, fmt.Errorf("%w: failed to read profile %s: %w", model.ErrInvalidConfig, path, err)
	}

	var layer Layer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&layer); err != nil && !errors.Is(err, io.EOF) {
			return Layer{}, fmt.Errorf("%w: failed to parse profile %s: %w", model.ErrInvalidConfig, path, err)
		}
	case ".json", ".jsonc":
		// Profiles are hand-written, so comments and trailing commas are
		// accepted the same way editors accept them in settings files.
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&layer); err != nil {
			return Layer{}, fmt.Errorf("%w: failed to parse profile %s: %w", model.ErrInvalidConfig, path, err)
		}
	default:
		return Layer{}, fmt.Errorf("%w: unsupported profile format %q (use .yaml, .yml, .json or .jsonc)", model.ErrInvalidConfig, ext)
	}
	return layer, nil
}
