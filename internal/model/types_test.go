package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestYearRange_Validate verifies that every valid (from, to) pair yields exactly
// to-from+1 strictly ascending years matching the bounds, and that an
// inverted range always fails validation.
func TestYearRange_Validate(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		wantLen  int
		hasError bool
	}{
		{"single year", 2000, 2000, 1, false},
		{"default range", DefaultFromYear, DefaultToYear, 36, false},
		{"two years", 1999, 2000, 2, false},
		{"inverted range", 2001, 2000, 0, true},
		{"inverted wide range", 2025, 1990, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := YearRange{From: tt.from, To: tt.to}
			err := r.Validate()
			if tt.hasError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidYearRange)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d cannot be bigger than %d", tt.from, tt.to))
				return
			}
			require.NoError(t, err)

			years := r.Years()
			require.Len(t, years, tt.wantLen)
			assert.Equal(t, tt.wantLen, r.Len())
			assert.Equal(t, tt.from, years[0])
			assert.Equal(t, tt.to, years[len(years)-1])
			for i := 1; i < len(years); i++ {
				assert.Equal(t, years[i-1]+1, years[i], "years must be strictly ascending by one")
			}
		})
	}
}

// TestYearRange_Tokens checks that years are rendered as plain decimal text.
func TestYearRange_Tokens(t *testing.T) {
	r := YearRange{From: 1999, To: 2001}
	assert.Equal(t, []string{"1999", "2000", "2001"}, r.Tokens())
	assert.Equal(t, "1999-2001", r.String())
}

// TestYearRange_LenInvalid makes sure an unvalidated, inverted range reports
// zero years instead of a negative count.
func TestYearRange_LenInvalid(t *testing.T) {
	r := YearRange{From: 2010, To: 2000}
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Years())
}

// TestDefaultSpecialChars_KeepsDuplicate confirms the comma appears twice and
// that SpecialTokens does not deduplicate it.
func TestDefaultSpecialChars_KeepsDuplicate(t *testing.T) {
	tokens := SpecialTokens(DefaultSpecialChars)
	assert.Equal(t, []string{"!", "?", ",", ";", ",", "-", "_"}, tokens)

	commas := 0
	for _, tok := range tokens {
		if tok == "," {
			commas++
		}
	}
	assert.Equal(t, 2, commas)
}

// TestParseKeywords verifies comma splitting, per-entry trimming and
// ordering.
func TestParseKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"alice", []string{"alice"}},
		{"alice,bob", []string{"alice", "bob"}},
		{" alice , bob ,carol ", []string{"alice", "bob", "carol"}},
		{"alice,,bob", []string{"alice", "bob"}}, // empty entries dropped
		{"  ,  ", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeywords(tt.input))
		})
	}
}

// TestCleanKeywords checks trimming of pre-split lists.
func TestCleanKeywords(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CleanKeywords([]string{" a", "", "b ", "  "}))
}

// TestPoolPolicy covers validation and the flag mapping.
func TestPoolPolicy(t *testing.T) {
	assert.True(t, PoolCumulative.IsValid())
	assert.True(t, PoolReset.IsValid())
	assert.False(t, PoolPolicy("sometimes").IsValid())

	assert.Equal(t, PoolReset, PoolPolicyFor(true))
	assert.Equal(t, PoolCumulative, PoolPolicyFor(false))
	assert.Equal(t, "cumulative", PoolCumulative.String())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInvalidConfig, "no keywords given")
		assert.Equal(t, ExitInvalidConfig, err.Code)
		assert.Equal(t, "no keywords given", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitOutputFailed, "generation failed", inner)
		assert.Equal(t, ExitOutputFailed, err.Code)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := fmt.Errorf("%w: unable to create out.txt", ErrOutput)
		err := WrapCLIError(ExitOutputFailed, "generation failed", inner)
		assert.True(t, errors.Is(err, ErrOutput))
	})
}

// TestExitCodeFor checks the sentinel-to-exit-code classification.
func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil", nil, ExitSuccess},
		{"year range", fmt.Errorf("setup: %w", ErrInvalidYearRange), ExitInvalidConfig},
		{"no keywords", ErrNoKeywords, ExitInvalidConfig},
		{"too long", fmt.Errorf("%w: 30 > 20", ErrKeywordTooLong), ExitInvalidConfig},
		{"config", fmt.Errorf("%w: bad yaml", ErrInvalidConfig), ExitInvalidConfig},
		{"output", fmt.Errorf("%w: disk full", ErrOutput), ExitOutputFailed},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}
