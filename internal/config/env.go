package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/shinji-kodama/humanizer/internal/model"
)

// DefaultDotEnv is the dotenv file looked up in the working directory.
const DefaultDotEnv = ".env"

// Environment variable names.
const (
	EnvKeywords         = "HUMANIZER_KEYWORDS"
	EnvOutputFilename   = "HUMANIZER_OUTPUT_FILENAME"
	EnvFromYear         = "HUMANIZER_FROM_YEAR"
	EnvToYear           = "HUMANIZER_TO_YEAR"
	EnvResetPool        = "HUMANIZER_RESET_POOL"
	EnvMaxKeywordLength = "HUMANIZER_MAX_KEYWORD_LENGTH"
)

// envSettings mirrors Layer with plain types for env decoding. Whether a
// variable was set at all is looked up separately, because a zero value is
// meaningful for some of them (HUMANIZER_MAX_KEYWORD_LENGTH=0).
type envSettings struct {
	Keywords         []string `env:"HUMANIZER_KEYWORDS" envSeparator:","`
	OutputFilename   string   `env:"HUMANIZER_OUTPUT_FILENAME"`
	FromYear         int      `env:"HUMANIZER_FROM_YEAR"`
	ToYear           int      `env:"HUMANIZER_TO_YEAR"`
	ResetPool        bool     `env:"HUMANIZER_RESET_POOL"`
	MaxKeywordLength int      `env:"HUMANIZER_MAX_KEYWORD_LENGTH"`
}

// LoadEnv loads the dotenv file at dotenvPath into the process environment,
// if it exists, and decodes the HUMANIZER_* variables into a Layer.
// Variables already set in the environment win over the dotenv file.
// An empty dotenvPath skips the dotenv step.
//
// A variable set to the empty string counts as unset, the same way the env
// decoder skips empty values, so HUMANIZER_OUTPUT_FILENAME= does not clear a
// profile value.
func LoadEnv(dotenvPath string) (Layer, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Layer{}, fmt.Errorf("%w: failed to load %s: %w", model.ErrInvalidConfig, dotenvPath, err)
		}
	}

	var raw envSettings
	if err := env.Parse(&raw); err != nil {
		return Layer{}, fmt.Errorf("%w: %w", model.ErrInvalidConfig, err)
	}
	return raw.layer(func(key string) bool {
		v, ok := os.LookupEnv(key)
		return ok && v != ""
	}), nil
}

// ParseEnv decodes a Layer from an explicit variable map instead of the
// process environment. Empty values count as unset, as in LoadEnv.
func ParseEnv(environment map[string]string) (Layer, error) {
	var raw envSettings
	if err := env.ParseWithOptions(&raw, env.Options{Environment: environment}); err != nil {
		return Layer{}, fmt.Errorf("%w: %w", model.ErrInvalidConfig, err)
	}
	return raw.layer(func(key string) bool {
		v, ok := environment[key]
		return ok && v != ""
	}), nil
}

// layer converts decoded values to a Layer, keeping only variables for
// which isSet reports a non-empty value.
func (e envSettings) layer(isSet func(key string) bool) Layer {
	var l Layer
	if isSet(EnvKeywords) {
		l.Keywords = e.Keywords
	}
	if isSet(EnvOutputFilename) {
		l.OutputFilename = e.OutputFilename
	}
	if isSet(EnvFromYear) {
		l.FromYear = &e.FromYear
	}
	if isSet(EnvToYear) {
		l.ToYear = &e.ToYear
	}
	if isSet(EnvResetPool) {
		l.ResetPool = &e.ResetPool
	}
	if isSet(EnvMaxKeywordLength) {
		l.MaxKeywordLength = &e.MaxKeywordLength
	}
	return l
}
