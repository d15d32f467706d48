package engine

// legacyEngine reproduces the first shipped version of the recovery engine.
// It predates the data-confidence penalties, the cold-start debt seeding,
// and the chronotype strain adjustment, and it used a slower smoothing
// blend and a higher caffeine impact floor. Kept so diagnostics stored
// before the v2 rollout can be regenerated with identical numbers; do not
// tune these constants.
type legacyEngine struct{}

func (legacyEngine) Version() Version { return VersionLegacy }

const (
	legacySmoothingPrev   = 0.7
	legacySmoothingTarget = 0.3

	legacyCaffeineImpactFloor = 0.5
)

var (
	legacyBodyWeights = penaltyWeights{
		Sleep:     32,
		Debt:      14,
		Strain:    18,
		Stress:    10,
		Menstrual: 16,
		Mood:      4,
		Activity:  6,
	}
	legacyMentalWeights = penaltyWeights{
		Sleep:     26,
		Debt:      8,
		Strain:    14,
		Stress:    24,
		Menstrual: 10,
		Mood:      14,
		Activity:  4,
	}
)

func (legacyEngine) Step(profile Profile, state HiddenState, in DailyInputs) (HiddenState, Diagnostics) {
	shift := in.Shift
	if !ValidShift(shift) {
		shift = ShiftOff
	}

	var d Diagnostics

	d.StressN = normLevel(in.StressLevel, 1, 4)
	d.ActivityN = normLevel(in.ActivityLevel, 1, 4)
	d.FatigueN = clamp(floatOrDefault(in.FatigueLevel, 0)/10, 0, 1)
	d.SymN = clamp(float64(clampInt(intOrDefault(in.SymptomSeverity, 0), 0, 3))/3, 0, 1)
	if in.MoodLevel != nil {
		d.MoodBadN = clamp(float64(5-clampInt(*in.MoodLevel, 1, 5))/4, 0, 1)
	}

	streak := nextNightStreak(state, shift)
	if in.NightStreak != nil {
		streak = clampInt(*in.NightStreak, 0, NightStreakMax)
	}

	remaining := CaffeineAtSleep(CaffeineDose{
		Mg:          floatOrDefault(in.CaffeineMg, 0),
		LastAt:      stringOrEmpty(in.CaffeineLastAt),
		Shift:       shift,
		Timing:      in.SleepTiming,
		Sensitivity: profile.CaffeineSensitivity,
	})
	d.CafSleepMg = remaining
	d.CafN = clamp(remaining/CaffeineImpactRefMg, 0, 1)
	d.CIF = clamp(1-CaffeineImpactScale*(remaining/CaffeineImpactRefMg), legacyCaffeineImpactFloor, 1)
	d.CSD = 1 - d.CIF

	hasSleep := in.SleepHours != nil
	totalSleep := 0.0
	if hasSleep {
		totalSleep = clamp(floatOrDefault(in.SleepHours, 0), 0, 16) +
			NapHoursWeight*clamp(floatOrDefault(in.NapHours, 0), 0, 8)
		d.SleepN = clamp(totalSleep/SleepHoursNormRef, 0, 1)
		d.SRI = sleepRecoveryIndex(totalSleep, in.SleepQuality, effectiveTiming(in.SleepTiming, shift)) * d.CIF
	} else {
		d.SRI = sriBaseline(shift, state.SleepDebt)
	}

	// v1 had no cold-start branch: the very first sleep log hit the full
	// accrual formula.
	next, debtN := updateSleepDebt(debtInputs{
		shift:        shift,
		sleepForDebt: totalSleep,
		prevDebt:     state.SleepDebt,
		hasDuration:  hasSleep,
		hasPriorLog:  true,
	})
	d.SleepDebtNext = next
	d.DebtN = debtN

	d.CSI = legacyStrain(strainInputs{
		shift:            shift,
		nightStreak:      streak,
		nightsIn30Days:   intOrDefault(in.NightsIn30Days, 0),
		quickReturnHours: floatOrDefault(in.QuickReturnHours, 0),
		shiftLengthHours: floatOrDefault(in.ShiftLengthHours, 0),
		overtimeHours:    floatOrDefault(in.OvertimeHours, 0),
	})

	d.SLF = clamp(SLFStressWeight*d.StressN+SLFFatigueWeight*d.FatigueN, 0, 1)
	d.MF = clamp(1-MoodFactorSlope*d.MoodBadN, MoodFactorFloor, 1)

	phase := resolvePhase(in)
	d.CyclePhase = phase.Phase
	d.CycleDay = phase.DayIndex
	d.MIF = menstrualImpact(phase.Phase, d.SymN, intOrDefault(in.MenstrualFlow, 0), shift)

	bodyPenalty := weightedPenalty(legacyBodyWeights, d)
	mentalPenalty := weightedPenalty(legacyMentalWeights, d)

	d.BodyTarget = clamp(100-bodyPenalty, 0, 100)
	d.MentalTarget = clamp(100-mentalPenalty, 0, 100)

	prevBB := clamp(state.BodyBattery, BatteryMin, BatteryMax)
	prevMB := clamp(state.MentalBattery, BatteryMin, BatteryMax)

	nextState := HiddenState{
		BodyBattery:   clamp(round1(prevBB*legacySmoothingPrev+d.BodyTarget*legacySmoothingTarget), BatteryMin, BatteryMax),
		MentalBattery: clamp(round1(prevMB*legacySmoothingPrev+d.MentalTarget*legacySmoothingTarget), BatteryMin, BatteryMax),
		PrevShift:     shift,
		NightStreak:   streak,
		SleepDebt:     next,
	}

	d.DeltaBody = round1(nextState.BodyBattery - prevBB)
	d.DeltaMental = round1(nextState.MentalBattery - prevMB)
	d.SatBody = saturation(nextState.BodyBattery)
	d.SatMental = saturation(nextState.MentalBattery)

	return nextState, d
}

// legacyStrain is circadianStrain without the chronotype adjustment.
func legacyStrain(in strainInputs) float64 {
	quickReturn := in.quickReturnHours > 0 && in.quickReturnHours < QuickReturnThresholdHours
	longShift := in.shiftLengthHours+in.overtimeHours >= LongShiftThresholdHours

	var csi float64
	if in.shift == ShiftNight {
		consecutive := 1 + CSIConsecutiveNightStep*float64(maxInt(0, in.nightStreak-1))
		schedule := 1.0
		if quickReturn {
			schedule += CSIQuickReturnBoost
		}
		switch {
		case in.nightsIn30Days > MonthlyNightsHeavy:
			schedule += CSIMonthlyHeavyBoost
		case in.nightsIn30Days > MonthlyNightsModerate:
			schedule += CSIMonthlyModerateBoost
		}
		if longShift {
			schedule += CSILongShiftBoost
		}
		csi = CSINightBase * consecutive * schedule
	} else {
		if quickReturn {
			csi += CSINonNightQuickReturn
		}
		if longShift {
			csi += CSINonNightLongShift
		}
	}

	return clamp(csi, 0, 1)
}
