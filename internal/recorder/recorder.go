package recorder

// BatterySnapshot holds one user's simulated state for a calendar day.
type BatterySnapshot struct {
	UserID        string
	Date          string // YYYY-MM-DD
	BodyBattery   float64
	MentalBattery float64
	SatBody       float64
	SatMental     float64
	SleepDebt     float64
	NightStreak   int
}

// Recorder persists nightly recompute results for offline analysis.
type Recorder interface {
	RecordSnapshot(snap *BatterySnapshot) error
	Close() error
}
