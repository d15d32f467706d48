package engine

// canonicalEngine is the current recovery engine.
type canonicalEngine struct{}

func (canonicalEngine) Version() Version { return VersionCanonical }

// Step advances the hidden state by one calendar day. It never panics:
// every numeric input is clamped or coerced, and malformed data degrades
// the score instead of raising an error.
func (canonicalEngine) Step(profile Profile, state HiddenState, in DailyInputs) (HiddenState, Diagnostics) {
	shift := in.Shift
	if !ValidShift(shift) {
		shift = ShiftOff
	}

	var d Diagnostics

	// 1. Normalize raw condition inputs to 0-1 sub-scores. Unlogged values
	// fall back to the neutral end of each range.
	d.StressN = normLevel(in.StressLevel, 1, 4)
	d.ActivityN = normLevel(in.ActivityLevel, 1, 4)
	d.FatigueN = clamp(floatOrDefault(in.FatigueLevel, 0)/10, 0, 1)
	d.SymN = clamp(float64(clampInt(intOrDefault(in.SymptomSeverity, 0), 0, 3))/3, 0, 1)
	if in.MoodLevel != nil {
		d.MoodBadN = clamp(float64(5-clampInt(*in.MoodLevel, 1, 5))/4, 0, 1)
	}

	// Night streak: schedule-derived override wins, otherwise carry the
	// state forward.
	streak := nextNightStreak(state, shift)
	if in.NightStreak != nil {
		streak = clampInt(*in.NightStreak, 0, NightStreakMax)
	}

	// Caffeine decay and impact.
	remaining := CaffeineAtSleep(CaffeineDose{
		Mg:          floatOrDefault(in.CaffeineMg, 0),
		LastAt:      stringOrEmpty(in.CaffeineLastAt),
		Shift:       shift,
		Timing:      in.SleepTiming,
		Sensitivity: profile.CaffeineSensitivity,
	})
	d.CafSleepMg = remaining
	d.CafN = clamp(remaining/CaffeineImpactRefMg, 0, 1)
	d.CIF = caffeineImpact(remaining)
	d.CSD = 1 - d.CIF

	// 2. Sleep Recovery Index.
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

	// 3. Sleep debt, strain, stress, mood, menstrual impact.
	next, debtN := updateSleepDebt(debtInputs{
		shift:        shift,
		sleepForDebt: totalSleep,
		prevDebt:     state.SleepDebt,
		hasDuration:  hasSleep,
		hasPriorLog:  in.HasPriorSleepLog,
	})
	d.SleepDebtNext = next
	d.DebtN = debtN

	d.CSI = circadianStrain(strainInputs{
		shift:            shift,
		nightStreak:      streak,
		nightsIn30Days:   intOrDefault(in.NightsIn30Days, 0),
		quickReturnHours: floatOrDefault(in.QuickReturnHours, 0),
		shiftLengthHours: floatOrDefault(in.ShiftLengthHours, 0),
		overtimeHours:    floatOrDefault(in.OvertimeHours, 0),
		chronotype:       profile.Chronotype,
	})

	d.SLF = clamp(SLFStressWeight*d.StressN+SLFFatigueWeight*d.FatigueN, 0, 1)
	d.MF = clamp(1-MoodFactorSlope*d.MoodBadN, MoodFactorFloor, 1)

	phase := resolvePhase(in)
	d.CyclePhase = phase.Phase
	d.CycleDay = phase.DayIndex
	d.MIF = menstrualImpact(phase.Phase, d.SymN, intOrDefault(in.MenstrualFlow, 0), shift)

	// 4. Aggregate weighted penalties plus data-confidence penalties.
	confidence := confidencePenalty(in)
	bodyPenalty := weightedPenalty(bodyWeights, d) + confidence
	mentalPenalty := weightedPenalty(mentalWeights, d) + confidence

	// 5. Targets.
	d.BodyTarget = clamp(100-bodyPenalty, 0, 100)
	d.MentalTarget = clamp(100-mentalPenalty, 0, 100)

	// 6. Exponential smoothing toward the targets.
	prevBB := clamp(state.BodyBattery, BatteryMin, BatteryMax)
	prevMB := clamp(state.MentalBattery, BatteryMin, BatteryMax)

	nextState := HiddenState{
		BodyBattery:   clamp(round1(prevBB*SmoothingPrevWeight+d.BodyTarget*SmoothingTargetWeight), BatteryMin, BatteryMax),
		MentalBattery: clamp(round1(prevMB*SmoothingPrevWeight+d.MentalTarget*SmoothingTargetWeight), BatteryMin, BatteryMax),
		PrevShift:     shift,
		NightStreak:   streak,
		SleepDebt:     next,
	}

	// 7. UI-facing deltas and depletion curves.
	d.DeltaBody = round1(nextState.BodyBattery - prevBB)
	d.DeltaMental = round1(nextState.MentalBattery - prevMB)
	d.SatBody = saturation(nextState.BodyBattery)
	d.SatMental = saturation(nextState.MentalBattery)

	return nextState, d
}

// nextNightStreak advances the consecutive-night counter.
func nextNightStreak(state HiddenState, shift ShiftType) int {
	if shift != ShiftNight {
		return 0
	}
	return clampInt(state.NightStreak+1, 0, NightStreakMax)
}

// normLevel maps an optional 1-based level to [0,1], nil to 0.
func normLevel(p *int, lo, hi int) float64 {
	if p == nil {
		return 0
	}
	v := clampInt(*p, lo, hi)
	return float64(v-lo) / float64(hi-lo)
}

// sleepRecoveryIndex scores a logged sleep block before caffeine impact.
func sleepRecoveryIndex(totalSleep float64, quality *int, timing SleepTiming) float64 {
	hoursNorm := totalSleep / SleepHoursNormRef

	qualityNorm := 1.0
	if quality != nil {
		qualityNorm = QualityNormBase + QualityNormSlope*float64(clampInt(*quality, 1, 5))
	}

	circadian := circadianFactorByTiming[timing]
	if circadian == 0 {
		circadian = circadianFactorByTiming[TimingNight]
	}

	return clamp(hoursNorm*qualityNorm*circadian, 0, 1)
}

// sriBaseline substitutes for SRI when no sleep was logged: probably
// adequate but uncertain, dragged down by carried debt, never below 0.5.
func sriBaseline(shift ShiftType, prevDebt float64) float64 {
	base := sriBaselineDefault
	if b, ok := sriBaselineByShift[shift]; ok {
		base = b
	}
	drag := clamp(prevDebt/SRIDebtDragRefHours, 0, SRIDebtDragCap)
	v := base - drag
	if v < SRIBaselineFloor {
		v = SRIBaselineFloor
	}
	return v
}

// effectiveTiming resolves TimingAuto from the shift worked: night workers
// sleeping after a shift sleep by day.
func effectiveTiming(timing SleepTiming, shift ShiftType) SleepTiming {
	switch timing {
	case TimingNight, TimingDay, TimingMixed:
		return timing
	}
	if shift == ShiftNight {
		return TimingDay
	}
	return TimingNight
}

// menstrualImpact combines phase, symptoms, flow, and the night-shift
// overlap into the multiplicative Menstrual Impact Factor.
func menstrualImpact(phase CyclePhase, symN float64, flow int, shift ShiftType) float64 {
	impact := mifPhaseImpact[phase]
	impact += symN * MIFSymptomWeight
	impact += float64(clampInt(flow, 0, 3)) * MIFFlowWeight
	if shift == ShiftNight && (phase == PhasePeriod || phase == PhasePMS) {
		impact += MIFNightShiftBoost
	}
	return clamp(1-impact, MIFFloor, 1)
}

// weightedPenalty converts the diagnostics bundle into battery points lost.
func weightedPenalty(w penaltyWeights, d Diagnostics) float64 {
	return w.Sleep*(1-d.SRI) +
		w.Debt*d.DebtN +
		w.Strain*d.CSI +
		w.Stress*d.SLF +
		w.Menstrual*(1-d.MIF) +
		w.Mood*(1-d.MF) +
		w.Activity*d.ActivityN
}

// confidencePenalty charges both batteries for imputed or stale input so
// reduced confidence shows up numerically instead of as an error.
func confidencePenalty(in DailyInputs) float64 {
	reliability := clamp(floatOrDefault(in.InputReliability, 1), 0, 1)
	penalty := clamp((1-reliability)*UncertaintyPenaltyScale, 0, UncertaintyPenaltyCap)

	stale := intOrDefault(in.DaysSinceAnyInput, 0)
	if stale > StalenessGraceDays {
		penalty += clamp(float64(stale-StalenessGraceDays)*StalenessPenaltyStep, 0, StalenessPenaltyCap)
	}
	return penalty
}
