package mutate

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInject verifies the exact entries and their order: append first, then
// interior insertions at split points 0..n-1.
func TestInject(t *testing.T) {
	tests := []struct {
		name      string
		variation string
		token     string
		want      []string
	}{
		{
			name:      "year token",
			variation: "ab",
			token:     "2000",
			want:      []string{"ab2000", "2000ab", "a2000b"},
		},
		{
			name:      "special token",
			variation: "aB",
			token:     "!",
			want:      []string{"aB!", "!aB", "a!B"},
		},
		{
			name:      "empty variation",
			variation: "",
			token:     "!",
			want:      []string{"!"},
		},
		{
			name:      "multi-byte runes are never split",
			variation: "éa",
			token:     "_",
			want:      []string{"éa_", "_éa", "é_a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Inject(nil, tt.variation, tt.token))
		})
	}
}

// TestInject_CountAndLength checks the n+1 rule and the length of every
// produced entry.
func TestInject_CountAndLength(t *testing.T) {
	for _, variation := range []string{"a", "abc", "P@ssW0rd"} {
		for _, token := range []string{"!", "1999"} {
			got := Inject(nil, variation, token)
			n := utf8.RuneCountInString(variation)
			require.Len(t, got, n+1)
			for _, entry := range got {
				assert.Equal(t, n+utf8.RuneCountInString(token), utf8.RuneCountInString(entry))
			}
		}
	}
}

// TestInject_AppendsToExisting ensures previous entries are kept.
func TestInject_AppendsToExisting(t *testing.T) {
	dst := []string{"existing"}
	dst = Inject(dst, "x", "!")
	assert.Equal(t, []string{"existing", "x!", "!x"}, dst)
}

// TestInjectAll keeps token order and duplicate tokens.
func TestInjectAll(t *testing.T) {
	got := InjectAll(nil, "x", []string{",", ";", ","})
	assert.Equal(t, []string{"x,", ",x", "x;", ";x", "x,", ",x"}, got)
}
