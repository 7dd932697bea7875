package symbol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"AAPL", "aapl.us", true},
		{"  aapl ", "aapl.us", true},
		{"TSLA.US", "tsla.us", true},
		{"sap.de", "sap.de", true},
		{"br k", "brk.us", true},
		{"", "", false},
		{"   \t", "", false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNormalize_BareInputGetsDefaultSuffix(t *testing.T) {
	for _, in := range []string{"a", "MSFT", "Spy", "x1y2"} {
		got, ok := Normalize(in)
		require.True(t, ok)
		assert.True(t, strings.HasSuffix(got, DefaultSuffix), "got %q", got)
		assert.Equal(t, strings.ToLower(got), got)
	}
}

func TestToDisplay(t *testing.T) {
	aapl, _ := Normalize("aapl")
	tsla, _ := Normalize("TSLA.US")
	assert.Equal(t, "AAPL", ToDisplay(aapl))
	assert.Equal(t, "TSLA", ToDisplay(tsla))
	assert.Equal(t, "SPY", ToDisplay("spy"))
}

func TestDisplayRoundTripIsIdempotent(t *testing.T) {
	for _, in := range []string{"aapl", "TSLA.US", " brk.b ", "sap.de", "Spy"} {
		first, ok := Normalize(in)
		require.True(t, ok)
		once := ToDisplay(first)
		again, ok := Normalize(once)
		require.True(t, ok)
		assert.Equal(t, once, ToDisplay(again), "input %q", in)
	}
}

func TestLooksLikeTicker(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"AAPL", true},
		{"brk.b", true},
		{"BF-B", true},
		{" tsla ", true},
		{"Apple Inc", false},
		{"Microsoft", false},
		{"BRK2", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LooksLikeTicker(tt.in), "input %q", tt.in)
	}
}
