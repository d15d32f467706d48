package domain

import (
	"github.com/sangjun0330/mnl-recovery/internal/engine"
	"github.com/sangjun0330/mnl-recovery/internal/engine/forecast"
)

// VitalsDay is one simulated day of the recovery series.
// @Description Battery scores and diagnostics for one calendar day.
type VitalsDay struct {
	// Calendar date in YYYY-MM-DD
	Date string `json:"date" example:"2026-08-29"`
	// Shift worked that day
	Shift string `json:"shift" example:"N"`
	// Whether a health log exists for this date
	Logged bool `json:"logged"`
	// Smoothed body battery, 0-100
	BodyBattery float64 `json:"body_battery" example:"62.4"`
	// Smoothed mental battery, 0-100
	MentalBattery float64 `json:"mental_battery" example:"58.1"`
	// Full diagnostic bundle for the day
	Diagnostics engine.Diagnostics `json:"diagnostics"`
}

// VitalsCurrent is the latest simulated state.
// @Description Current battery state after folding every logged day.
type VitalsCurrent struct {
	// Date of the last simulated day
	Date          string  `json:"date" example:"2026-08-29"`
	BodyBattery   float64 `json:"body_battery" example:"62.4"`
	MentalBattery float64 `json:"mental_battery" example:"58.1"`
	// Saturation curves for depletion display, 0-1
	SatBody   float64 `json:"sat_body" example:"0.71"`
	SatMental float64 `json:"sat_mental" example:"0.68"`
	// Accumulated sleep debt in hours, 0-20
	SleepDebt float64 `json:"sleep_debt" example:"4.2"`
	// Consecutive night shifts, capped at 5
	NightStreak int `json:"night_streak" example:"2"`
}

// VitalsResponse is the response for the vitals endpoint.
// @Description Day-by-day recovery simulation over a date range.
type VitalsResponse struct {
	// Range start date (inclusive)
	From string `json:"from" example:"2026-08-01"`
	// Range end date (inclusive)
	To string `json:"to" example:"2026-08-29"`
	// Engine version that produced the series
	Engine string `json:"engine" example:"v2"`
	// One entry per calendar day in the range
	Days []VitalsDay `json:"days"`
	// State after the last day
	Current VitalsCurrent `json:"current"`
}

// VitalsRequest contains query parameters for the vitals endpoint.
type VitalsRequest struct {
	From    string `json:"from" validate:"omitempty,iso_date"`
	To      string `json:"to" validate:"omitempty,iso_date"`
	Version string `json:"version" validate:"omitempty,oneof=v1 v2"`
}

// ForecastResponse is the response for the hourly forecast endpoint.
// @Description Hour-level battery projection over the upcoming schedule.
type ForecastResponse struct {
	// First forecast date in YYYY-MM-DD
	From string `json:"from" example:"2026-08-30"`
	// Battery level the forecast starts from
	InitialBattery float64 `json:"initial_battery" example:"62.4"`
	// Per-day hourly projections
	Days []forecast.DayForecast `json:"days"`
}

// ForecastRequest contains query parameters for the forecast endpoint.
type ForecastRequest struct {
	From string `json:"from" validate:"omitempty,iso_date"`
	Days int    `json:"days" validate:"omitempty,min=1,max=14"`
}

// LLMAdviceOutput contains the structured output from the LLM.
// @Description LLM-generated recovery advice.
type LLMAdviceOutput struct {
	// Summary of the current recovery state (2-3 sentences)
	Summary string `json:"summary" example:"Two consecutive nights have pushed your sleep debt up..."`
	// Observations about recent patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Sleep debt rose 3 hours across the last rotation\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Anchor a 90-minute nap before tonight's shift\"]"`
}

// AdviceContext is the context object sent to the LLM.
// @Description Context data for recovery advice generation.
type AdviceContext struct {
	Profile engine.Profile `json:"profile"`
	Current VitalsCurrent  `json:"current"`
	// Recent simulated days, oldest first
	Recent []VitalsDay `json:"recent"`
	// Upcoming schedule risk, one entry per forecast day
	Outlook []forecast.DayForecast `json:"outlook"`
}

// AdviceResponse is the response for the advice endpoint.
// @Description Recovery advice combined with the state it was generated from.
type AdviceResponse struct {
	// State the advice was generated from
	Current VitalsCurrent `json:"current"`
	// LLM-generated advice
	Advice LLMAdviceOutput `json:"advice"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
