// Package engine implements the daily circadian recovery simulation: a pure,
// deterministic state transition that converts sparse per-day health inputs
// into Body/Mental battery scores and a set of named physiological indices.
//
// The package has no external dependencies and performs no I/O. Callers own
// the hidden state and must apply Step strictly in ascending date order,
// feeding each day's next state into the following day.
package engine

// ShiftType identifies the shift worked on a given day.
type ShiftType string

const (
	ShiftDay      ShiftType = "D"
	ShiftEvening  ShiftType = "E"
	ShiftNight    ShiftType = "N"
	ShiftMid      ShiftType = "M"
	ShiftOff      ShiftType = "OFF"
	ShiftVacation ShiftType = "VAC"
)

// ValidShift reports whether s is a known shift code.
func ValidShift(s ShiftType) bool {
	switch s {
	case ShiftDay, ShiftEvening, ShiftNight, ShiftMid, ShiftOff, ShiftVacation:
		return true
	}
	return false
}

// IsRestDay reports whether the shift is a non-working day.
func (s ShiftType) IsRestDay() bool {
	return s == ShiftOff || s == ShiftVacation
}

// SleepTiming describes when the main sleep block happened relative to the
// clock. TimingAuto derives the timing from the shift worked.
type SleepTiming string

const (
	TimingAuto  SleepTiming = "auto"
	TimingNight SleepTiming = "night"
	TimingDay   SleepTiming = "day"
	TimingMixed SleepTiming = "mixed"
)

// CyclePhase is a menstrual cycle phase.
type CyclePhase string

const (
	PhaseNone       CyclePhase = "none"
	PhasePeriod     CyclePhase = "period"
	PhasePMS        CyclePhase = "pms"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseFollicular CyclePhase = "follicular"
	PhaseLuteal     CyclePhase = "luteal"
)

// Profile holds the static per-user traits the engine needs.
type Profile struct {
	// Chronotype in [0,1]: 0 = evening type, 1 = morning type.
	Chronotype float64 `json:"chronotype"`
	// CaffeineSensitivity in [0.5,1.5], a multiplier on caffeine half-life.
	CaffeineSensitivity float64 `json:"caffeine_sensitivity"`
}

// DefaultProfile returns the profile used when a user has no settings.
func DefaultProfile() Profile {
	return Profile{Chronotype: 0.5, CaffeineSensitivity: 1.0}
}

// HiddenState is the only state carried across days.
type HiddenState struct {
	// BodyBattery and MentalBattery are smoothed 0-100 recovery scores.
	BodyBattery   float64 `json:"bb"`
	MentalBattery float64 `json:"mb"`
	// PrevShift is the shift worked yesterday.
	PrevShift ShiftType `json:"prev_shift"`
	// NightStreak counts consecutive night shifts, capped at 5.
	NightStreak int `json:"night_streak"`
	// SleepDebt is the rolling accumulated hours deficit in [0,20].
	SleepDebt float64 `json:"sleep_debt"`
}

// DefaultHiddenState returns the state for a user with no history.
func DefaultHiddenState() HiddenState {
	return HiddenState{
		BodyBattery:   DefaultBattery,
		MentalBattery: DefaultBattery,
		PrevShift:     ShiftOff,
		NightStreak:   0,
		SleepDebt:     0,
	}
}

// DailyInputs is one day's raw inputs. Pointer fields distinguish "not
// logged" from a logged zero; the engine treats nil as missing and falls
// back to its documented defaults rather than erroring.
type DailyInputs struct {
	// Date is the ISO (YYYY-MM-DD) calendar date being simulated.
	Date string `json:"date"`

	// Shift worked this day. Empty is treated as OFF.
	Shift ShiftType `json:"shift"`

	// Sleep.
	SleepHours   *float64    `json:"sleep_hours,omitempty"`
	NapHours     *float64    `json:"nap_hours,omitempty"`
	SleepQuality *int        `json:"sleep_quality,omitempty"` // 1-5
	SleepTiming  SleepTiming `json:"sleep_timing,omitempty"`  // defaults to auto

	// Caffeine.
	CaffeineMg     *float64 `json:"caffeine_mg,omitempty"`
	CaffeineLastAt *string  `json:"caffeine_last_at,omitempty"` // HH:MM clock time

	// Daily condition, all optional.
	StressLevel   *int     `json:"stress_level,omitempty"`   // 1-4
	ActivityLevel *int     `json:"activity_level,omitempty"` // 1-4
	MoodLevel     *int     `json:"mood_level,omitempty"`     // 1-5
	FatigueLevel  *float64 `json:"fatigue_level,omitempty"`  // 0-10

	// Menstrual cycle. Explicit status/flow logged today overrides the
	// predicted phase.
	LastPeriodStart *string `json:"last_period_start,omitempty"` // ISO date
	CycleLengthAvg  *int    `json:"cycle_length_avg,omitempty"`
	PeriodLength    *int    `json:"period_length,omitempty"`
	SymptomSeverity *int    `json:"symptom_severity,omitempty"` // 0-3
	MenstrualStatus *string `json:"menstrual_status,omitempty"` // "period"/"pms"
	MenstrualFlow   *int    `json:"menstrual_flow,omitempty"`   // 0-3

	// Schedule-derived strain inputs.
	NightStreak      *int     `json:"night_streak,omitempty"` // overrides state-derived streak
	NightsIn30Days   *int     `json:"nights_in_30_days,omitempty"`
	QuickReturnHours *float64 `json:"quick_return_hours,omitempty"`
	ShiftLengthHours *float64 `json:"shift_length_hours,omitempty"`
	OvertimeHours    *float64 `json:"overtime_hours,omitempty"`

	// Reliability metadata, supplied by the caller from log freshness.
	InputReliability  *float64 `json:"input_reliability,omitempty"` // 0-1
	DaysSinceAnyInput *int     `json:"days_since_any_input,omitempty"`

	// HasPriorSleepLog tells the debt tracker whether any earlier day ever
	// carried a sleep duration, so a first log seeds debt conservatively.
	HasPriorSleepLog bool `json:"has_prior_sleep_log,omitempty"`
}

// Diagnostics is the per-day derived output bundle. It is recomputed fresh
// on every step and never fed back as input.
type Diagnostics struct {
	// Normalized 0-1 sub-scores.
	StressN   float64 `json:"stress_n"`
	ActivityN float64 `json:"activity_n"`
	MoodBadN  float64 `json:"mood_bad_n"`
	FatigueN  float64 `json:"fatigue_n"`
	SleepN    float64 `json:"sleep_n"`
	CafN      float64 `json:"caf_n"`
	SymN      float64 `json:"sym_n"`
	DebtN     float64 `json:"debt_n"`

	// Named indices.
	SRI float64 `json:"sri"` // sleep recovery index
	CSI float64 `json:"csi"` // circadian strain index
	SLF float64 `json:"slf"` // stress load factor
	MIF float64 `json:"mif"` // menstrual impact factor
	CIF float64 `json:"cif"` // caffeine impact factor
	MF  float64 `json:"mf"`  // mood factor

	// Intermediates.
	CyclePhase    CyclePhase `json:"cycle_phase"`
	CycleDay      int        `json:"cycle_day"`
	CafSleepMg    float64    `json:"caf_sleep_mg"` // residual caffeine at sleep onset
	CSD           float64    `json:"csd"`          // caffeine sleep disruption, 1-CIF
	SleepDebtNext float64    `json:"sleep_debt_next"`

	// Targets and deltas.
	BodyTarget   float64 `json:"body_target"`
	MentalTarget float64 `json:"mental_target"`
	DeltaBody    float64 `json:"d_bb"`
	DeltaMental  float64 `json:"d_mb"`

	// Saturation curves for UI depletion display.
	SatBody   float64 `json:"sat_body"`
	SatMental float64 `json:"sat_mental"`
}

// DayResult pairs a simulated day's state with its diagnostics.
type DayResult struct {
	Date        string      `json:"date"`
	State       HiddenState `json:"state"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Version selects one of the two engine strategies.
type Version string

const (
	// VersionCanonical is the current engine.
	VersionCanonical Version = "v2"
	// VersionLegacy reproduces the earlier constants and branches so
	// previously stored diagnostics can be regenerated bit-for-bit.
	VersionLegacy Version = "v1"
)

// RecoveryEngine is a daily battery state transition strategy.
type RecoveryEngine interface {
	// Step advances the hidden state by one calendar day.
	Step(profile Profile, state HiddenState, in DailyInputs) (HiddenState, Diagnostics)
	// Version identifies the strategy.
	Version() Version
}

// New returns the engine for the requested version, defaulting to the
// canonical engine for unknown versions.
func New(v Version) RecoveryEngine {
	if v == VersionLegacy {
		return legacyEngine{}
	}
	return canonicalEngine{}
}

// Simulate folds the engine over an ordered slice of daily inputs, starting
// from the given state. Days must already be sorted in ascending date order.
func Simulate(e RecoveryEngine, profile Profile, initial HiddenState, days []DailyInputs) []DayResult {
	results := make([]DayResult, 0, len(days))
	state := initial
	for _, day := range days {
		next, diag := e.Step(profile, state, day)
		results = append(results, DayResult{Date: day.Date, State: next, Diagnostics: diag})
		state = next
	}
	return results
}
