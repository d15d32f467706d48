package engine

// Tuning constants for the recovery engine. These values ARE the domain
// model: every multiplier, half-life, and penalty weight lives here so the
// arithmetic in the step functions stays mechanical.

// Battery smoothing: each day's battery is a blend of yesterday's value and
// today's target. Batteries never jump straight to target.
const (
	SmoothingPrevWeight   = 0.65
	SmoothingTargetWeight = 0.35
)

// Hidden state bounds and defaults.
const (
	BatteryMin = 0.0
	BatteryMax = 100.0

	DefaultBattery = 70.0

	SleepDebtMax   = 20.0
	NightStreakMax = 5
)

// Caffeine pharmacokinetics.
const (
	CaffeineBaseHalfLifeHours = 5.0
	CaffeineSensitivityMin    = 0.5
	CaffeineSensitivityMax    = 1.5

	// CIF = clamp(1 - CaffeineImpactScale*(remaining/CaffeineImpactRefMg), floor, 1)
	CaffeineImpactScale = 0.5
	CaffeineImpactRefMg = 100.0
	CaffeineImpactFloor = 0.4
)

// Hours between last caffeine intake and projected sleep onset when no
// intake clock time was logged, by shift.
var caffeineDefaultGapHours = map[ShiftType]float64{
	ShiftDay:     6,
	ShiftEvening: 4,
	ShiftNight:   2,
	ShiftMid:     5,
	ShiftOff:     5,
	ShiftVacation: 5,
}

// Projected sleep-onset clock hour by shift, used when an intake clock time
// was logged. Overridden by an explicit sleep timing.
var sleepStartHourByShift = map[ShiftType]float64{
	ShiftDay:      23,
	ShiftEvening:  0,
	ShiftNight:    9,
	ShiftMid:      22,
	ShiftOff:      23,
	ShiftVacation: 23,
}

// Projected sleep-onset clock hour by explicit sleep timing.
var sleepStartHourByTiming = map[SleepTiming]float64{
	TimingNight: 23,
	TimingDay:   9,
	TimingMixed: 21,
}

// Sleep targets and debt dynamics.
const (
	SleepTargetBaseHours = 7.0

	// Rolling debt update when a duration was logged:
	// next = prev*DebtDecayRate + shortfall*DebtAccrualRate - surplus*DebtRecoveryRate
	DebtDecayRate    = 0.88
	DebtAccrualRate  = 1.0
	DebtRecoveryRate = 0.75

	// Carry factors applied when no duration was logged. Debt persists, it
	// does not reset on missing data.
	DebtCarryNight = 0.992
	DebtCarryOther = 0.978

	// Passive recovery subtracted on unlogged days.
	DebtPassiveRecoveryOff  = 0.22
	DebtPassiveRecoveryWork = 0.08

	// First-ever sleep log seeds debt from that day's deficit alone.
	DebtColdStartCap = 4.5

	// debt_n = clamp(debt/DebtNormRefHours, 0, 1)
	DebtNormRefHours = 10.0
)

// Extra sleep needed on top of the base target, by shift.
var sleepTargetBonus = map[ShiftType]float64{
	ShiftNight:   0.5,
	ShiftEvening: 0.25,
	ShiftMid:     0.15,
}

// Sleep Recovery Index.
const (
	SleepHoursNormRef = 8.0
	NapHoursWeight    = 0.6

	// qualityNorm = QualityNormBase + QualityNormSlope*quality (1-5 scale),
	// so a 4/5 rating maps to 1.0.
	QualityNormBase  = 0.6
	QualityNormSlope = 0.1

	// Baseline SRI drag from carried debt when no sleep was logged.
	SRIDebtDragRefHours = 16.0
	SRIDebtDragCap      = 0.25
	SRIBaselineFloor    = 0.5
)

// Circadian factor by effective sleep timing.
var circadianFactorByTiming = map[SleepTiming]float64{
	TimingNight: 1.0,
	TimingMixed: 0.9,
	TimingDay:   0.8,
}

// Shift-dependent SRI baseline used when no sleep duration was logged. An
// unlogged day is assumed probably adequate but uncertain, never perfect.
var sriBaselineByShift = map[ShiftType]float64{
	ShiftNight:   0.64,
	ShiftEvening: 0.70,
	ShiftMid:     0.72,
}

const sriBaselineDefault = 0.75

// Circadian Strain Index.
const (
	CSINightBase            = 0.5
	CSIConsecutiveNightStep = 0.2

	QuickReturnThresholdHours = 11.0
	CSIQuickReturnBoost       = 0.2

	MonthlyNightsModerate      = 8
	MonthlyNightsHeavy         = 15
	CSIMonthlyModerateBoost    = 0.1
	CSIMonthlyHeavyBoost       = 0.2

	LongShiftThresholdHours = 12.0
	CSILongShiftBoost       = 0.1

	// Non-night shifts still accrue strain from turnarounds and overtime.
	CSINonNightQuickReturn = 0.5
	CSINonNightLongShift   = 0.4

	// adjusted = csi * (CSIChronotypeBase - CSIChronotypeSlope*chronotype)
	CSIChronotypeBase  = 1.1
	CSIChronotypeSlope = 0.2
)

// Stress Load Factor.
const (
	SLFStressWeight  = 0.7
	SLFFatigueWeight = 0.3
)

// Mood Factor.
const (
	MoodFactorSlope = 0.1
	MoodFactorFloor = 0.85
)

// Menstrual Impact Factor.
const (
	MIFSymptomWeight   = 0.2
	MIFFlowWeight      = 0.03
	MIFNightShiftBoost = 0.04
	MIFFloor           = 0.55
)

// Base recovery impact by cycle phase.
var mifPhaseImpact = map[CyclePhase]float64{
	PhasePeriod:     0.16,
	PhasePMS:        0.11,
	PhaseLuteal:     0.06,
	PhaseFollicular: 0.02,
	PhaseOvulation:  0.01,
	PhaseNone:       0,
}

// Cycle settings clamps.
const (
	CycleLengthMin  = 20
	CycleLengthMax  = 45
	PeriodLengthMin = 2
	PeriodLengthMax = 10

	PMSWindowDays      = 5
	OvulationOffset    = 14
	OvulationDayMin    = 6
	OvulationDayMaxGap = 8
)

// penaltyWeights maps each normalized badness factor to battery points.
// Each table sums to 100 so a fully degraded day pins the target at zero.
type penaltyWeights struct {
	Sleep     float64
	Debt      float64
	Strain    float64
	Stress    float64
	Menstrual float64
	Mood      float64
	Activity  float64
}

// Body weights activity and debt more heavily; Mental weights stress and
// mood more heavily.
var (
	bodyWeights = penaltyWeights{
		Sleep:     30,
		Debt:      14,
		Strain:    16,
		Stress:    10,
		Menstrual: 18,
		Mood:      4,
		Activity:  8,
	}
	mentalWeights = penaltyWeights{
		Sleep:     24,
		Debt:      8,
		Strain:    12,
		Stress:    26,
		Menstrual: 12,
		Mood:      14,
		Activity:  4,
	}
)

// Data-confidence penalties, applied to both batteries.
const (
	UncertaintyPenaltyScale = 14.0
	UncertaintyPenaltyCap   = 10.0

	StalenessGraceDays   = 2
	StalenessPenaltyStep = 1.2
	StalenessPenaltyCap  = 8.0
)

// Saturation curve reference: sat(b) = ln(1+(100-b)/SatRef) / ln(1+100/SatRef).
const SatRef = 25.0
