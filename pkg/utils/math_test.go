package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"four decimals", 0.123456, 4, 0.1235},
		{"already short", 0.2, 4, 0.2},
		{"negative", -0.123456, 4, -0.1235},
		{"zero decimals", 2.5, 0, 3},
		{"one", 1, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundDecimal(tt.value, tt.decimals), 1e-12)
		})
	}
}
