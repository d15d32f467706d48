package engine

import (
	"math"
	"strconv"
	"strings"
)

// CaffeineDose describes the day's caffeine intake for the decay model.
type CaffeineDose struct {
	Mg          float64
	LastAt      string // HH:MM clock time of last intake, empty if not logged
	Shift       ShiftType
	Timing      SleepTiming
	Sensitivity float64 // 0.5-1.5 multiplier on half-life
}

// CaffeineAtSleep estimates residual caffeine (mg) at projected sleep onset
// using first-order exponential decay. A pure function: identical input
// yields identical output.
func CaffeineAtSleep(d CaffeineDose) float64 {
	mg := clamp(d.Mg, 0, 2000)
	if mg == 0 {
		return 0
	}

	halfLife := CaffeineBaseHalfLifeHours * clamp(d.Sensitivity, CaffeineSensitivityMin, CaffeineSensitivityMax)

	hours := hoursUntilSleep(d)
	return mg * math.Pow(0.5, hours/halfLife)
}

// hoursUntilSleep derives the gap between last intake and sleep onset. With
// a logged clock time it measures to the shift/timing-dependent sleep-start
// hour, wrapping past midnight; otherwise it uses a shift-dependent default.
func hoursUntilSleep(d CaffeineDose) float64 {
	intake, ok := parseClock(d.LastAt)
	if !ok {
		if gap, found := caffeineDefaultGapHours[d.Shift]; found {
			return gap
		}
		return caffeineDefaultGapHours[ShiftOff]
	}

	sleepStart := sleepStartHour(d.Shift, d.Timing)
	hours := sleepStart - intake
	if hours <= 0 {
		hours += 24
	}
	return hours
}

// sleepStartHour picks the projected sleep-onset hour. An explicit timing
// wins; auto falls back to the shift table.
func sleepStartHour(shift ShiftType, timing SleepTiming) float64 {
	if h, ok := sleepStartHourByTiming[timing]; ok {
		return h
	}
	if h, ok := sleepStartHourByShift[shift]; ok {
		return h
	}
	return sleepStartHourByShift[ShiftOff]
}

// caffeineImpact converts residual caffeine into the Caffeine Impact Factor.
// Lower CIF means more impaired sleep onset.
func caffeineImpact(remainingMg float64) float64 {
	return clamp(1-CaffeineImpactScale*(remainingMg/CaffeineImpactRefMg), CaffeineImpactFloor, 1)
}

// parseClock parses an HH:MM clock string into fractional hours.
func parseClock(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m := 0
	if len(parts) == 2 {
		m, err = strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return 0, false
		}
	}
	return float64(h) + float64(m)/60, true
}
