package engine

// debtInputs carries what the sleep-debt tracker needs for one day.
type debtInputs struct {
	shift         ShiftType
	sleepForDebt  float64 // logged sleep counted toward debt (core + weighted naps)
	prevDebt      float64
	hasDuration   bool // a sleep duration was logged today
	hasPriorLog   bool // any earlier day ever carried a sleep duration
}

// updateSleepDebt advances the rolling hours-deficit. Debt accrues fully on
// shortfall, recovers at a reduced rate on surplus, decays a little every
// day, and persists (does not reset) when no duration was logged.
func updateSleepDebt(in debtInputs) (next, debtN float64) {
	prev := clamp(in.prevDebt, 0, SleepDebtMax)

	if !in.hasDuration {
		carry := DebtCarryOther
		if in.shift == ShiftNight {
			carry = DebtCarryNight
		}
		passive := DebtPassiveRecoveryWork
		if in.shift.IsRestDay() {
			passive = DebtPassiveRecoveryOff
		}
		next = clamp(prev*carry-passive, 0, SleepDebtMax)
		return next, clamp(next/DebtNormRefHours, 0, 1)
	}

	deficit := sleepTarget(in.shift) - in.sleepForDebt

	// First-ever log with near-zero carried debt: seed from today's deficit
	// alone so one cold-start data point cannot blow up the score.
	if !in.hasPriorLog && prev < 0.5 {
		next = clamp(max0(deficit), 0, DebtColdStartCap)
		return next, clamp(next/DebtNormRefHours, 0, 1)
	}

	next = clamp(prev*DebtDecayRate+max0(deficit)*DebtAccrualRate-max0(-deficit)*DebtRecoveryRate, 0, SleepDebtMax)
	return next, clamp(next/DebtNormRefHours, 0, 1)
}

// sleepTarget is the hours of sleep the shift demands.
func sleepTarget(shift ShiftType) float64 {
	return SleepTargetBaseHours + sleepTargetBonus[shift]
}

func max0(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}
