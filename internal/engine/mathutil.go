package engine

import "math"

// clamp bounds v to [lo, hi]. Non-finite input collapses to lo, which keeps
// the step function total: dirty data degrades the score, it never panics.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 rounds to one decimal place, the precision all battery values use.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// finiteOr returns v when it is a usable number, otherwise fallback.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// floatOrDefault dereferences an optional float, substituting def for nil or
// non-finite values.
func floatOrDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return finiteOr(*p, def)
}

// intOrDefault dereferences an optional int.
func intOrDefault(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// clampInt bounds an int to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// saturation maps a battery level to a 0-1 "how depleted" curve used by the
// UI. Logarithmic so the first points lost matter more than the last.
func saturation(battery float64) float64 {
	b := clamp(battery, BatteryMin, BatteryMax)
	return clamp(math.Log(1+(BatteryMax-b)/SatRef)/math.Log(1+BatteryMax/SatRef), 0, 1)
}
