package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists nightly snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the recompute job writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS battery_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			user_id        TEXT NOT NULL,
			snapshot_date  TEXT NOT NULL,
			body_battery   REAL,
			mental_battery REAL,
			sat_body       REAL,
			sat_mental     REAL,
			sleep_debt     REAL,
			night_streak   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_user_date ON battery_snapshots(user_id, snapshot_date)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON battery_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(snap *BatterySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO battery_snapshots
		(timestamp, user_id, snapshot_date, body_battery, mental_battery,
		 sat_body, sat_mental, sleep_debt, night_streak)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.UserID, snap.Date,
		snap.BodyBattery, snap.MentalBattery,
		snap.SatBody, snap.SatMental,
		snap.SleepDebt, snap.NightStreak,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
