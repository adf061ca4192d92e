package logic

import (
	"math"
	"testing"
)

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name           string
		avg, high, low float64
		want           float64
	}{
		{"Flat series scores 100", 100, 100, 100, 100},
		{"Full spread clamps to 0", 100, 200, 0, 0},
		{"Wider spread stays clamped", 100, 300, 0, 0},
		{"Moderate spread", 100, 120, 80, 80},
		{"Zero average guards division", 0, 10, 0, 0},
		{"Negative average guards division", -5, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsistencyScore(tt.avg, tt.high, tt.low)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ConsistencyScore(%v, %v, %v) = %v, want %v", tt.avg, tt.high, tt.low, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %v outside [0,100]", got)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"Empty series", nil, 0},
		{"Single entry", []float64{100}, 0},
		{"Flat series", []float64{100, 100, 100}, 0},
		{"Known spread", []float64{90, 110}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StdDev(tt.series)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("StdDev(%v) = %v, want %v", tt.series, got, tt.want)
			}
		})
	}
}
