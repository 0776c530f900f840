package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func curveOf(equities ...float64) []Checkpoint {
	curve := make([]Checkpoint, len(equities))
	for i, eq := range equities {
		curve[i] = Checkpoint{Time: t0.Add(time.Duration(i) * time.Hour), Equity: eq}
	}
	return curve
}

func TestTrackExcursions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		curve []Checkpoint
		basis float64
		want  Excursions
	}{
		{
			name:  "empty",
			curve: nil,
			basis: 1000,
			want:  Excursions{},
		},
		{
			name:  "single_checkpoint",
			curve: curveOf(0),
			basis: 1000,
			want:  Excursions{},
		},
		{
			name:  "monotonic_increase_has_no_drawdown",
			curve: curveOf(0, 50, 120, 300),
			basis: 1000,
			want: Excursions{
				MaxRunUp:    300,
				MaxRunUpPct: 30,
			},
		},
		{
			name:  "monotonic_decrease_has_no_runup",
			curve: curveOf(0, -100, -250),
			basis: 1000,
			want: Excursions{
				MaxDrawDown:    -250,
				MaxDrawDownPct: -25,
			},
		},
		{
			name:  "peak_then_trough_then_recovery",
			curve: curveOf(0, 100, -50, 200),
			basis: 1000,
			want: Excursions{
				MaxRunUp:       250,              // -50 trough to 200
				MaxRunUpPct:    250.0 / 950 * 100, // baseline is basis at the trough
				MaxDrawDown:    -150,              // 100 peak to -50
				MaxDrawDownPct: -150.0 / 1100 * 100,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TrackExcursions(tt.curve, tt.basis)
			assert.InDelta(t, tt.want.MaxRunUp, got.MaxRunUp, 1e-9)
			assert.InDelta(t, tt.want.MaxRunUpPct, got.MaxRunUpPct, 1e-9)
			assert.InDelta(t, tt.want.MaxDrawDown, got.MaxDrawDown, 1e-9)
			assert.InDelta(t, tt.want.MaxDrawDownPct, got.MaxDrawDownPct, 1e-9)
		})
	}
}

func TestTrackExcursionsSignInvariant(t *testing.T) {
	t.Parallel()

	// MaxDrawDown <= 0 <= MaxRunUp for any curve
	curves := [][]Checkpoint{
		curveOf(0, 10, -10, 5, -3),
		curveOf(0, -1, -2, -3),
		curveOf(0, 1, 2, 3),
		curveOf(0),
	}
	for _, c := range curves {
		ex := TrackExcursions(c, 100)
		assert.LessOrEqual(t, ex.MaxDrawDown, 0.0)
		assert.GreaterOrEqual(t, ex.MaxRunUp, 0.0)
	}
}
