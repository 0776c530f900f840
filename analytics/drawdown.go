package analytics

// Excursions holds the worst drawdown and best run-up over an equity curve,
// each with the percentage taken against the capital baseline in effect at
// the moment the extreme occurred.
type Excursions struct {
	MaxRunUp       float64
	MaxRunUpPct    float64
	MaxDrawDown    float64 // negative or zero
	MaxDrawDownPct float64
}

// TrackExcursions walks the curve once with a running peak and trough.
// Drawdown at a checkpoint is equity minus the running peak; run-up is
// equity minus the running trough. The percentage counterparts divide by
// basis plus the same peak (resp. trough), so absolute and percent always
// share a baseline. A curve with fewer than two checkpoints reports zeros.
func TrackExcursions(curve []Checkpoint, basis float64) Excursions {
	var ex Excursions
	if len(curve) < 2 {
		return ex
	}

	peak := curve[0].Equity
	trough := curve[0].Equity

	for _, c := range curve[1:] {
		eq := c.Equity
		if eq > peak {
			peak = eq
		}
		if eq < trough {
			trough = eq
		}

		if dd := eq - peak; dd < ex.MaxDrawDown {
			ex.MaxDrawDown = dd
			ex.MaxDrawDownPct = dd / (basis + peak) * 100
		}
		if ru := eq - trough; ru > ex.MaxRunUp {
			ex.MaxRunUp = ru
			ex.MaxRunUpPct = ru / (basis + trough) * 100
		}
	}
	return ex
}
