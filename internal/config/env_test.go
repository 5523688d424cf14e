package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/humanizer/internal/model"
)

// TestParseEnv decodes every supported variable from an explicit map.
func TestParseEnv(t *testing.T) {
	layer, err := ParseEnv(map[string]string{
		"HUMANIZER_KEYWORDS":           "acme, rocket",
		"HUMANIZER_OUTPUT_FILENAME":    "env.txt",
		"HUMANIZER_FROM_YEAR":          "2001",
		"HUMANIZER_TO_YEAR":            "2003",
		"HUMANIZER_RESET_POOL":         "true",
		"HUMANIZER_MAX_KEYWORD_LENGTH": "0",
	})
	require.NoError(t, err)

	s := Defaults()
	s.Apply(layer)
	assert.Equal(t, []string{"acme", "rocket"}, s.Keywords)
	assert.Equal(t, "env.txt", s.OutputFilename)
	assert.Equal(t, model.YearRange{From: 2001, To: 2003}, s.Years)
	assert.Equal(t, model.PoolReset, s.Policy)
	assert.Equal(t, 0, s.MaxKeywordLength)
}

// TestParseEnv_Unset leaves every field unset.
func TestParseEnv_Unset(t *testing.T) {
	layer, err := ParseEnv(map[string]string{})
	require.NoError(t, err)
	assert.Nil(t, layer.FromYear)
	assert.Nil(t, layer.ToYear)
	assert.Nil(t, layer.ResetPool)
	assert.Nil(t, layer.MaxKeywordLength)
	assert.Empty(t, layer.Keywords)
}

// TestParseEnv_EmptyIsUnset treats empty variables like missing ones, so
// they never override a profile value.
func TestParseEnv_EmptyIsUnset(t *testing.T) {
	layer, err := ParseEnv(map[string]string{
		EnvOutputFilename:   "",
		EnvFromYear:         "",
		EnvMaxKeywordLength: "",
	})
	require.NoError(t, err)
	assert.Empty(t, layer.OutputFilename)
	assert.Nil(t, layer.FromYear)
	assert.Nil(t, layer.MaxKeywordLength)
}

// TestLoadEnv_EmptyIsUnset does the same for the process environment.
func TestLoadEnv_EmptyIsUnset(t *testing.T) {
	t.Setenv(EnvOutputFilename, "")
	t.Setenv(EnvToYear, "")

	layer, err := LoadEnv("")
	require.NoError(t, err)
	assert.Empty(t, layer.OutputFilename)
	assert.Nil(t, layer.ToYear)
}

// TestParseEnv_Invalid reports malformed numbers as configuration errors.
func TestParseEnv_Invalid(t *testing.T) {
	_, err := ParseEnv(map[string]string{"HUMANIZER_FROM_YEAR": "nineteen"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

// TestLoadEnv_DotEnv loads a dotenv file and lets the real environment win.
func TestLoadEnv_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HUMANIZER_TO_YEAR=2011\nHUMANIZER_FROM_YEAR=2009\n"), 0o644))

	// godotenv writes into the process environment; undo it afterwards.
	t.Cleanup(func() {
		_ = os.Unsetenv("HUMANIZER_TO_YEAR")
	})
	t.Setenv("HUMANIZER_FROM_YEAR", "2005")

	layer, err := LoadEnv(path)
	require.NoError(t, err)
	require.NotNil(t, layer.ToYear)
	require.NotNil(t, layer.FromYear)
	assert.Equal(t, 2011, *layer.ToYear)
	assert.Equal(t, 2005, *layer.FromYear, "existing variables are not overridden")
}

// TestLoadEnv_MissingDotEnv ignores a dotenv file that does not exist.
func TestLoadEnv_MissingDotEnv(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}
