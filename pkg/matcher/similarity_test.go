package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "paypal.com", "paypal.com", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "abc", 0.0},
		{"single substitution", "paypa1.com", "paypal.com", 0.9},
		{"single insertion", "paypall.com", "paypal.com", 10.0 / 11.0},
		{"fully disjoint", "abc", "xyz", 0.0},
		{"different lengths", "google.com", "go.com", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"paypal.com", "paypa1.com"},
		{"amazon.com", "amaz0n-login.com"},
		{"", "short"},
		{"a", "abcdefgh"},
	}

	for _, p := range pairs {
		assert.InDelta(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), 1e-12,
			"similarity must be symmetric for %q and %q", p[0], p[1])
	}
}

func TestSimilarity_SelfIsOne(t *testing.T) {
	for _, s := range []string{"", "a", "paypal.com", "very-long-domain-name-with-dashes.example.org"} {
		assert.InDelta(t, 1.0, Similarity(s, s), 1e-12)
	}
}
