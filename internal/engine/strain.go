package engine

// strainInputs captures the shift-pattern harshness signals for one day.
type strainInputs struct {
	shift            ShiftType
	nightStreak      int
	nightsIn30Days   int
	quickReturnHours float64 // hours between previous shift end and this shift start; 0 = unknown
	shiftLengthHours float64
	overtimeHours    float64
	chronotype       float64
}

// circadianStrain scores shift-pattern harshness into [0,1].
func circadianStrain(in strainInputs) float64 {
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
		// Non-night shifts still accrue strain from quick turnarounds and
		// overtime, just no night penalty.
		if quickReturn {
			csi += CSINonNightQuickReturn
		}
		if longShift {
			csi += CSINonNightLongShift
		}
	}

	// Evening types carry more strain for the same schedule.
	chrono := clamp(in.chronotype, 0, 1)
	csi *= CSIChronotypeBase - CSIChronotypeSlope*chrono

	return clamp(csi, 0, 1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
