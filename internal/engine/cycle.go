package engine

import "github.com/sangjun0330/mnl-recovery/pkg/dateutil"

// CycleSettings are the inputs to the phase prediction.
type CycleSettings struct {
	Date            string // target ISO date
	LastPeriodStart string // ISO date of last menstrual period start, empty if unset
	CycleLengthAvg  int    // average cycle length in days
	PeriodLength    int    // period length in days
}

// PhaseResult is a predicted cycle position.
type PhaseResult struct {
	Phase    CyclePhase
	DayIndex int // day within the cycle, 0-based; 0 when phase is none
}

// MenstrualPhase maps a date and cycle settings to a predicted phase.
// Without a last-period date, or for dates before it, the phase is none.
func MenstrualPhase(s CycleSettings) PhaseResult {
	if s.LastPeriodStart == "" {
		return PhaseResult{Phase: PhaseNone}
	}
	if _, err := dateutil.ParseISO(s.Date); err != nil {
		return PhaseResult{Phase: PhaseNone}
	}
	if _, err := dateutil.ParseISO(s.LastPeriodStart); err != nil {
		return PhaseResult{Phase: PhaseNone}
	}

	days := dateutil.DaysBetween(s.LastPeriodStart, s.Date)
	if days < 0 {
		return PhaseResult{Phase: PhaseNone}
	}

	cycleLen := clampInt(s.CycleLengthAvg, CycleLengthMin, CycleLengthMax)
	periodLen := clampInt(s.PeriodLength, PeriodLengthMin, PeriodLengthMax)

	dayIndex := days % cycleLen

	ovulationDay := clampInt(cycleLen-OvulationOffset, OvulationDayMin, cycleLen-OvulationDayMaxGap)

	var phase CyclePhase
	switch {
	case dayIndex < periodLen:
		phase = PhasePeriod
	case dayIndex >= cycleLen-PMSWindowDays:
		phase = PhasePMS
	case dayIndex == ovulationDay:
		phase = PhaseOvulation
	case dayIndex < ovulationDay:
		phase = PhaseFollicular
	default:
		phase = PhaseLuteal
	}

	return PhaseResult{Phase: phase, DayIndex: dayIndex}
}

// resolvePhase applies same-day logged signals on top of the prediction.
// Logged reality always wins over cycle prediction.
func resolvePhase(in DailyInputs) PhaseResult {
	predicted := MenstrualPhase(CycleSettings{
		Date:            in.Date,
		LastPeriodStart: stringOrEmpty(in.LastPeriodStart),
		CycleLengthAvg:  intOrDefault(in.CycleLengthAvg, 28),
		PeriodLength:    intOrDefault(in.PeriodLength, 5),
	})

	if in.MenstrualStatus != nil {
		switch *in.MenstrualStatus {
		case string(PhasePeriod):
			predicted.Phase = PhasePeriod
			return predicted
		case string(PhasePMS):
			predicted.Phase = PhasePMS
			return predicted
		}
	}
	if in.MenstrualFlow != nil && *in.MenstrualFlow > 0 {
		predicted.Phase = PhasePeriod
	}
	return predicted
}

func stringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
