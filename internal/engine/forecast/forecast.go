// Package forecast implements the hour-level battery simulator: a coarser,
// schedule-driven alternative to the daily recovery engine, used for
// multi-day outlooks and messaging. It does not feed back into the daily
// engine.
package forecast

import (
	"math"

	"github.com/sangjun0330/mnl-recovery/internal/engine"
	"github.com/sangjun0330/mnl-recovery/pkg/dateutil"
)

// Activity classifies one clock hour.
type Activity string

const (
	ActivityWork  Activity = "work"
	ActivitySleep Activity = "sleep"
	ActivityRest  Activity = "rest"
)

// Drain and charge rates, per hour.
const (
	DrainRestPerHour = 3.5
	DrainWorkPerHour = 7.5

	ChargeNightSleepPerHour = 15.0
	// Day sleep charges at 60% efficiency.
	ChargeDaySleepPerHour = 9.0

	// Zombie zone: circadian low peaking at 04:00, felt within +-2 hours.
	ZombiePeakHour   = 4.0
	ZombieWindowHour = 2.0
	ZombiePeakBoost  = 0.6
	ZombieSigma      = 1.5

	// Working a second consecutive night drains faster.
	ConsecutiveNightDrainFactor = 1.1
	ConsecutiveNightThreshold   = 2
)

// Risk band thresholds over the per-day minimum battery.
const (
	RiskDangerBelow  = 20.0
	RiskCautionBelow = 50.0
)

// Band labels shown to users.
const (
	BandDanger  = "위험"
	BandCaution = "주의"
	BandGood    = "양호"
)

// hourWindow is a [Start,End) clock range stamped onto the hour grid.
// DayOffset 1 places the window on the following calendar day.
type hourWindow struct {
	Start, End int
	DayOffset  int
}

// shiftPlan fixes the clock-time structure of each shift type.
type shiftPlan struct {
	Work  []hourWindow
	Sleep []hourWindow
	// Eval is the window whose minimum battery summarizes the day. For a
	// night shift it spans into the next morning, capturing the zombie zone.
	Eval []hourWindow
}

var shiftPlans = map[engine.ShiftType]shiftPlan{
	engine.ShiftDay: {
		Work:  []hourWindow{{Start: 7, End: 14}},
		Sleep: []hourWindow{{Start: 23, End: 24}, {Start: 0, End: 6, DayOffset: 1}},
		Eval:  []hourWindow{{Start: 7, End: 14}},
	},
	engine.ShiftEvening: {
		Work:  []hourWindow{{Start: 14, End: 22}},
		Sleep: []hourWindow{{Start: 1, End: 8, DayOffset: 1}},
		Eval:  []hourWindow{{Start: 14, End: 22}},
	},
	engine.ShiftMid: {
		Work:  []hourWindow{{Start: 10, End: 17}},
		Sleep: []hourWindow{{Start: 22, End: 24}, {Start: 0, End: 5, DayOffset: 1}},
		Eval:  []hourWindow{{Start: 10, End: 17}},
	},
	engine.ShiftNight: {
		Work:  []hourWindow{{Start: 22, End: 24}, {Start: 0, End: 7, DayOffset: 1}},
		Sleep: []hourWindow{{Start: 9, End: 13, DayOffset: 1}},
		Eval:  []hourWindow{{Start: 22, End: 24}, {Start: 0, End: 7, DayOffset: 1}},
	},
	engine.ShiftOff: {
		Sleep: []hourWindow{{Start: 23, End: 24}, {Start: 0, End: 7, DayOffset: 1}},
		Eval:  []hourWindow{{Start: 0, End: 24}},
	},
	engine.ShiftVacation: {
		Sleep: []hourWindow{{Start: 23, End: 24}, {Start: 0, End: 7, DayOffset: 1}},
		Eval:  []hourWindow{{Start: 0, End: 24}},
	},
}

// Request describes a forecast run.
type Request struct {
	// StartDate is the first simulated ISO date.
	StartDate string
	// Days is the forecast horizon in days.
	Days int
	// Schedule maps ISO dates to the shift worked. Missing dates are OFF.
	Schedule map[string]engine.ShiftType
	// InitialBattery seeds the simulation; zero means the default 70.
	InitialBattery float64
}

// HourPoint is one simulated clock hour.
type HourPoint struct {
	Hour     int      `json:"hour"`
	Battery  float64  `json:"battery"`
	Activity Activity `json:"activity"`
}

// DayForecast summarizes one simulated day.
type DayForecast struct {
	Date       string           `json:"date"`
	Shift      engine.ShiftType `json:"shift"`
	MinBattery float64          `json:"min_battery"`
	MinHour    int              `json:"min_hour"`
	RiskBand   string           `json:"risk_band"`
	Message    string           `json:"message"`
	Hours      []HourPoint      `json:"hours"`
}

// Forecast simulates the battery hour by hour over the horizon.
func Forecast(req Request) []DayForecast {
	days := req.Days
	if days < 1 {
		days = 1
	}

	shifts := make([]engine.ShiftType, days)
	for i := range shifts {
		date := dateutil.AddDays(req.StartDate, i)
		s, ok := req.Schedule[date]
		if !ok || !engine.ValidShift(s) {
			s = engine.ShiftOff
		}
		shifts[i] = s
	}

	// One extra day of hours so night-shift windows that spill past
	// midnight stay on the grid.
	totalHours := (days + 1) * 24
	activities := make([]Activity, totalHours)
	for i := range activities {
		activities[i] = ActivityRest
	}

	// Sleep first, work second: a scheduled shift always wins the hour.
	for day, shift := range shifts {
		plan := shiftPlans[shift]
		for _, w := range plan.Sleep {
			stamp(activities, day, w, ActivitySleep)
		}
	}
	for day, shift := range shifts {
		plan := shiftPlans[shift]
		for _, w := range plan.Work {
			stamp(activities, day, w, ActivityWork)
		}
	}

	battery := req.InitialBattery
	if battery <= 0 {
		battery = engine.DefaultBattery
	}
	battery = clampBattery(battery)

	levels := make([]float64, totalHours)
	for abs := 0; abs < totalHours; abs++ {
		day := abs / 24
		hour := abs % 24

		switch activities[abs] {
		case ActivitySleep:
			battery += chargeRate(hour)
		default:
			rate := DrainRestPerHour
			if activities[abs] == ActivityWork {
				rate = DrainWorkPerHour
			}
			rate *= zombieFactor(hour)
			if day < days && nightStreakAt(shifts, day) >= ConsecutiveNightThreshold {
				rate *= ConsecutiveNightDrainFactor
			}
			battery -= rate
		}
		battery = clampBattery(battery)
		levels[abs] = battery
	}

	out := make([]DayForecast, days)
	for day := 0; day < days; day++ {
		shift := shifts[day]
		plan := shiftPlans[shift]

		minBattery := 100.0
		minHour := 0
		for _, w := range plan.Eval {
			for h := w.Start; h < w.End; h++ {
				abs := (day+w.DayOffset)*24 + h
				if abs >= totalHours {
					continue
				}
				if levels[abs] < minBattery {
					minBattery = levels[abs]
					minHour = h
				}
			}
		}

		hours := make([]HourPoint, 24)
		for h := 0; h < 24; h++ {
			abs := day*24 + h
			hours[h] = HourPoint{Hour: h, Battery: levels[abs], Activity: activities[abs]}
		}

		out[day] = DayForecast{
			Date:       dateutil.AddDays(req.StartDate, day),
			Shift:      shift,
			MinBattery: math.Round(minBattery*10) / 10,
			MinHour:    minHour,
			RiskBand:   riskBand(minBattery),
			Message:    dayMessage(shift, minBattery, minHour),
			Hours:      hours,
		}
	}
	return out
}

func stamp(activities []Activity, day int, w hourWindow, a Activity) {
	for h := w.Start; h < w.End; h++ {
		abs := (day+w.DayOffset)*24 + h
		if abs >= 0 && abs < len(activities) {
			activities[abs] = a
		}
	}
}

// chargeRate gives sleep its clock-dependent recovery rate: overnight sleep
// restores fully, daytime sleep at reduced efficiency.
func chargeRate(hour int) float64 {
	if hour >= 21 || hour < 9 {
		return ChargeNightSleepPerHour
	}
	return ChargeDaySleepPerHour
}

// zombieFactor scales drain inside the early-morning circadian low.
func zombieFactor(hour int) float64 {
	dist := math.Abs(float64(hour) - ZombiePeakHour)
	if dist > ZombieWindowHour {
		return 1
	}
	return 1 + ZombiePeakBoost*math.Exp(-(dist*dist)/(2*ZombieSigma*ZombieSigma))
}

// nightStreakAt counts consecutive night shifts ending at the given day.
func nightStreakAt(shifts []engine.ShiftType, day int) int {
	streak := 0
	for i := day; i >= 0 && shifts[i] == engine.ShiftNight; i-- {
		streak++
	}
	return streak
}

func riskBand(minBattery float64) string {
	switch {
	case minBattery < RiskDangerBelow:
		return BandDanger
	case minBattery < RiskCautionBelow:
		return BandCaution
	default:
		return BandGood
	}
}

// dayMessage picks a short user-facing note keyed by shift, the low point's
// clock hour, and how deep it goes.
func dayMessage(shift engine.ShiftType, minBattery float64, minHour int) string {
	switch {
	case minBattery < RiskDangerBelow:
		if shift == engine.ShiftNight && (minHour >= 2 && minHour <= 6) {
			return "새벽 집중력 저하 구간이에요. 04시 전후에는 더블 체크를 권장해요."
		}
		return "배터리가 바닥 근처까지 떨어져요. 오늘은 회복을 최우선으로 하세요."
	case minBattery < RiskCautionBelow:
		if shift == engine.ShiftNight {
			return "나이트 근무로 배터리 소모가 커요. 출근 전 짧은 낮잠이 도움이 돼요."
		}
		if shift.IsRestDay() {
			return "쉬는 날이지만 회복이 더뎌요. 수면 부채를 갚는 날로 쓰세요."
		}
		return "오후로 갈수록 지치기 쉬워요. 카페인은 이른 시간에만 드세요."
	default:
		if shift.IsRestDay() {
			return "컨디션이 잘 회복되고 있어요."
		}
		return "오늘은 무리 없이 소화할 수 있는 하루예요."
	}
}

func clampBattery(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
