package wav

import (
	"testing"

	"github.com/pipelined/signal"
	"github.com/stretchr/testify/assert"
)

func TestMixdown(t *testing.T) {
	tests := []struct {
		description string
		channels    signal.Float64
		frames      int
		dst         []float64
		expected    []float64
		n           int
	}{
		{
			description: "mono",
			channels:    signal.Float64{{0.1, 0.2, 0.3}},
			frames:      3,
			dst:         make([]float64, 3),
			expected:    []float64{0.1, 0.2, 0.3},
			n:           3,
		},
		{
			description: "stereo",
			channels:    signal.Float64{{1, 0.5}, {0, -0.5}},
			frames:      2,
			dst:         make([]float64, 2),
			expected:    []float64{0.5, 0},
			n:           2,
		},
		{
			description: "short dst",
			channels:    signal.Float64{{0.1, 0.2, 0.3}},
			frames:      3,
			dst:         make([]float64, 2),
			expected:    []float64{0.1, 0.2},
			n:           2,
		},
		{
			description: "incomplete frame",
			channels:    signal.Float64{{1, 1}, {1, 0}},
			frames:      1,
			dst:         make([]float64, 2),
			expected:    []float64{1, 0},
			n:           1,
		},
		{
			description: "no channels",
			frames:      2,
			dst:         make([]float64, 2),
			expected:    []float64{0, 0},
			n:           0,
		},
	}
	for _, test := range tests {
		t.Log(test.description)
		n := mixdown(test.dst, test.channels, test.frames)
		assert.Equal(t, test.n, n)
		assert.InDeltaSlice(t, test.expected, test.dst, 1e-9)
	}
}

func TestClip(t *testing.T) {
	b := []float64{-2, -1, 0.5, 1, 3}
	clip(b)
	assert.Equal(t, []float64{-1, -1, 0.5, 1, 1}, b)
}
