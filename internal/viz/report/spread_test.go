package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSpread(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Spread
	}{
		{
			name: "empty",
			want: Spread{},
		},
		{
			name:   "single",
			scores: []float64{0.4},
			want:   Spread{Min: 0.4, Q1: 0.4, Median: 0.4, Q3: 0.4, Max: 0.4, Mean: 0.4, Count: 1},
		},
		{
			name:   "unsorted five",
			scores: []float64{1, 0, 0.5, 0.25, 0.75},
			want:   Spread{Min: 0, Q1: 0.25, Median: 0.5, Q3: 0.75, Max: 1, Mean: 0.5, Stddev: 0.3952847075210474, Count: 5},
		},
		{
			name:   "interpolated quartiles",
			scores: []float64{0, 1},
			want:   Spread{Min: 0, Q1: 0.25, Median: 0.5, Q3: 0.75, Max: 1, Mean: 0.5, Stddev: 0.7071067811865476, Count: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSpread(tt.scores)
			assert.InDelta(t, tt.want.Min, got.Min, 1e-9)
			assert.InDelta(t, tt.want.Q1, got.Q1, 1e-9)
			assert.InDelta(t, tt.want.Median, got.Median, 1e-9)
			assert.InDelta(t, tt.want.Q3, got.Q3, 1e-9)
			assert.InDelta(t, tt.want.Max, got.Max, 1e-9)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.want.Stddev, got.Stddev, 1e-9)
			assert.Equal(t, tt.want.Count, got.Count)
		})
	}
}

func TestComputeSpread_DoesNotReorderInput(t *testing.T) {
	scores := []float64{0.9, 0.1, 0.5}
	ComputeSpread(scores)
	assert.Equal(t, []float64{0.9, 0.1, 0.5}, scores)
}
