package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalTimeSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		packed float64
		want   float64
	}{
		{name: "one minute", packed: 112.34, want: 72.34},
		{name: "under a minute", packed: 59.99, want: 59.99},
		{name: "two minutes", packed: 201.5, want: 121.5},
		{name: "zero", packed: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, FinalTimeSeconds(tt.packed), 1e-9)
		})
	}

	t.Run("NaN propagates", func(t *testing.T) {
		t.Parallel()
		assert.True(t, math.IsNaN(FinalTimeSeconds(math.NaN())))
	})
}

func TestFractionSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		packed float64
		want   float64
	}{
		{name: "one minute", packed: 10234, want: 62.34},
		{name: "under a minute", packed: 2345, want: 23.45},
		{name: "two minutes", packed: 20001, want: 120.01},
		{name: "zero", packed: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, FractionSeconds(tt.packed), 1e-9)
		})
	}

	t.Run("NaN propagates", func(t *testing.T) {
		t.Parallel()
		assert.True(t, math.IsNaN(FractionSeconds(math.NaN())))
	})
}

func TestRoundHundredths(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.13, roundHundredths(1.125), 1e-9)
	assert.InDelta(t, -1.13, roundHundredths(-1.125), 1e-9)
	assert.InDelta(t, 72.34, roundHundredths(72.34000000001), 1e-9)
}
