package wordlist

import (
	"fmt"
	"math"
	"math/bits"
	"unicode/utf8"

	"github.com/shinji-kodama/humanizer/internal/model"
	"github.com/shinji-kodama/humanizer/internal/mutate"
)

// Capacity is the predicted size of a run. All counts saturate at
// math.MaxUint64.
type Capacity struct {
	// Keywords is the number of keywords.
	Keywords int `json:"keywords"`

	// Written is the number of generated entries the run would write.
	Written uint64 `json:"written"`

	// Lines is Written plus one original keyword line per keyword.
	Lines uint64 `json:"lines"`

	// PoolSize is the pool size after the last keyword, which bounds the
	// number of strings held in memory at once.
	PoolSize uint64 `json:"poolSize"`
}

// Estimate predicts the output of a run without generating anything.
//
// A keyword of L runes contributes 2^L × (L+1) × (years + specials) pool
// entries: 2^L variations, each receiving L+1 placements of every token.
// Under the cumulative policy every keyword writes the whole pool so far;
// under the reset policy it writes only its own contribution.
func Estimate(keywords []string, years model.YearRange, specials []rune, policy model.PoolPolicy) (Capacity, error) {
	if err := years.Validate(); err != nil {
		return Capacity{}, err
	}
	if specials == nil {
		specials = model.DefaultSpecialChars
	}
	if policy == "" {
		policy = model.PoolCumulative
	}

	tokens := uint64(years.Len()) + uint64(len(specials))
	c := Capacity{Keywords: len(keywords)}
	var pool uint64

	for _, kw := range keywords {
		n := utf8.RuneCountInString(kw)
		variations, err := mutate.VariationCount(n)
		if err != nil {
			return Capacity{}, fmt.Errorf("keyword %q: %w", kw, err)
		}
		added := satMul(satMul(variations, uint64(n)+1), tokens)

		if policy == model.PoolReset {
			pool = added
		} else {
			pool = satAdd(pool, added)
		}
		c.Written = satAdd(c.Written, pool)
		c.Lines = satAdd(c.Lines, satAdd(pool, 1))
	}
	c.PoolSize = pool
	return c, nil
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
