package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/engine"
)

// HealthLog is one user's log for one calendar day: the shift worked plus
// whatever sleep, caffeine, condition and cycle fields they chose to record.
// Nullable columns mean "not logged", which the engine treats differently
// from a logged zero.
type HealthLog struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_health_logs_user_date" json:"user_id"`
	LogDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_health_logs_user_date,sort:desc" json:"log_date"`
	Shift   string    `gorm:"type:varchar(4);not null" json:"shift"`

	SleepHours   *float64 `gorm:"type:numeric(4,2)" json:"sleep_hours,omitempty"`
	NapHours     *float64 `gorm:"type:numeric(4,2)" json:"nap_hours,omitempty"`
	SleepQuality *int     `gorm:"type:smallint" json:"sleep_quality,omitempty"`
	SleepTiming  *string  `gorm:"type:varchar(8)" json:"sleep_timing,omitempty"`

	CaffeineMg     *float64 `gorm:"type:numeric(6,1)" json:"caffeine_mg,omitempty"`
	CaffeineLastAt *string  `gorm:"type:varchar(5)" json:"caffeine_last_at,omitempty"`

	StressLevel   *int     `gorm:"type:smallint" json:"stress_level,omitempty"`
	ActivityLevel *int     `gorm:"type:smallint" json:"activity_level,omitempty"`
	MoodLevel     *int     `gorm:"type:smallint" json:"mood_level,omitempty"`
	FatigueLevel  *float64 `gorm:"type:numeric(4,1)" json:"fatigue_level,omitempty"`

	MenstrualStatus *string `gorm:"type:varchar(10)" json:"menstrual_status,omitempty"`
	MenstrualFlow   *int    `gorm:"type:smallint" json:"menstrual_flow,omitempty"`
	SymptomSeverity *int    `gorm:"type:smallint" json:"symptom_severity,omitempty"`

	QuickReturnHours *float64 `gorm:"type:numeric(4,1)" json:"quick_return_hours,omitempty"`
	ShiftLengthHours *float64 `gorm:"type:numeric(4,1)" json:"shift_length_hours,omitempty"`
	OvertimeHours    *float64 `gorm:"type:numeric(4,1)" json:"overtime_hours,omitempty"`

	ClientRequestID *string `gorm:"type:varchar(255);uniqueIndex:idx_health_logs_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthLog) TableName() string {
	return "health_logs"
}

// DateISO returns the log's calendar date in YYYY-MM-DD form.
func (h *HealthLog) DateISO() string {
	return h.LogDate.UTC().Format("2006-01-02")
}

// ToInputs maps the stored log onto the engine's per-day input struct.
// Cycle settings come from the owning user, not from the log.
func (h *HealthLog) ToInputs() engine.DailyInputs {
	in := engine.DailyInputs{
		Date:             h.DateISO(),
		Shift:            engine.ShiftType(h.Shift),
		SleepHours:       h.SleepHours,
		NapHours:         h.NapHours,
		SleepQuality:     h.SleepQuality,
		CaffeineMg:       h.CaffeineMg,
		CaffeineLastAt:   h.CaffeineLastAt,
		StressLevel:      h.StressLevel,
		ActivityLevel:    h.ActivityLevel,
		MoodLevel:        h.MoodLevel,
		FatigueLevel:     h.FatigueLevel,
		MenstrualStatus:  h.MenstrualStatus,
		MenstrualFlow:    h.MenstrualFlow,
		SymptomSeverity:  h.SymptomSeverity,
		QuickReturnHours: h.QuickReturnHours,
		ShiftLengthHours: h.ShiftLengthHours,
		OvertimeHours:    h.OvertimeHours,
	}
	if h.SleepTiming != nil {
		in.SleepTiming = engine.SleepTiming(*h.SleepTiming)
	}
	return in
}

// CreateHealthLogRequest is the request body for creating a daily log.
// @Description Request payload for recording one day of shift and health data.
type CreateHealthLogRequest struct {
	// Calendar date of the log in YYYY-MM-DD
	Date string `json:"date" validate:"required,iso_date" example:"2026-08-29"`
	// Shift worked: D (day), E (evening), N (night), M (mid), OFF, VAC
	Shift string `json:"shift" validate:"required,shift_type" example:"N" enums:"D,E,N,M,OFF,VAC"`

	// Main sleep duration in hours
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24" example:"6.5"`
	// Nap duration in hours
	NapHours *float64 `json:"nap_hours,omitempty" validate:"omitempty,min=0,max=12" example:"1"`
	// Sleep quality from 1 (poor) to 5 (excellent)
	SleepQuality *int `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=5" example:"3"`
	// When the main sleep happened: auto, night, day or mixed
	SleepTiming *string `json:"sleep_timing,omitempty" validate:"omitempty,oneof=auto night day mixed" example:"day"`

	// Total caffeine intake in milligrams
	CaffeineMg *float64 `json:"caffeine_mg,omitempty" validate:"omitempty,min=0,max=2000" example:"150"`
	// Clock time of the last caffeine intake, HH:MM
	CaffeineLastAt *string `json:"caffeine_last_at,omitempty" validate:"omitempty,clock_time" example:"16:30"`

	// Stress level from 1 to 4
	StressLevel *int `json:"stress_level,omitempty" validate:"omitempty,min=1,max=4" example:"3"`
	// Physical activity level from 1 to 4
	ActivityLevel *int `json:"activity_level,omitempty" validate:"omitempty,min=1,max=4" example:"2"`
	// Mood from 1 (bad) to 5 (great)
	MoodLevel *int `json:"mood_level,omitempty" validate:"omitempty,min=1,max=5" example:"4"`
	// Subjective fatigue from 0 to 10
	FatigueLevel *float64 `json:"fatigue_level,omitempty" validate:"omitempty,min=0,max=10" example:"6"`

	// Logged cycle status, overrides prediction: period or pms
	MenstrualStatus *string `json:"menstrual_status,omitempty" validate:"omitempty,oneof=period pms" example:"period"`
	// Menstrual flow from 0 (none) to 3 (heavy)
	MenstrualFlow *int `json:"menstrual_flow,omitempty" validate:"omitempty,min=0,max=3" example:"2"`
	// Cycle symptom severity from 0 to 3
	SymptomSeverity *int `json:"symptom_severity,omitempty" validate:"omitempty,min=0,max=3" example:"1"`

	// Hours between yesterday's clock-out and today's clock-in
	QuickReturnHours *float64 `json:"quick_return_hours,omitempty" validate:"omitempty,min=0,max=48" example:"9.5"`
	// Total shift length in hours
	ShiftLengthHours *float64 `json:"shift_length_hours,omitempty" validate:"omitempty,min=0,max=24" example:"12"`
	// Overtime worked in hours
	OvertimeHours *float64 `json:"overtime_hours,omitempty" validate:"omitempty,min=0,max=12" example:"1.5"`

	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdateHealthLogRequest is the request body for amending a daily log.
// Only present fields are changed; the date and shift of an existing log can
// be corrected but never removed.
type UpdateHealthLogRequest struct {
	Shift *string `json:"shift,omitempty" validate:"omitempty,shift_type"`

	SleepHours   *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24"`
	NapHours     *float64 `json:"nap_hours,omitempty" validate:"omitempty,min=0,max=12"`
	SleepQuality *int     `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=5"`
	SleepTiming  *string  `json:"sleep_timing,omitempty" validate:"omitempty,oneof=auto night day mixed"`

	CaffeineMg     *float64 `json:"caffeine_mg,omitempty" validate:"omitempty,min=0,max=2000"`
	CaffeineLastAt *string  `json:"caffeine_last_at,omitempty" validate:"omitempty,clock_time"`

	StressLevel   *int     `json:"stress_level,omitempty" validate:"omitempty,min=1,max=4"`
	ActivityLevel *int     `json:"activity_level,omitempty" validate:"omitempty,min=1,max=4"`
	MoodLevel     *int     `json:"mood_level,omitempty" validate:"omitempty,min=1,max=5"`
	FatigueLevel  *float64 `json:"fatigue_level,omitempty" validate:"omitempty,min=0,max=10"`

	MenstrualStatus *string `json:"menstrual_status,omitempty" validate:"omitempty,oneof=period pms"`
	MenstrualFlow   *int    `json:"menstrual_flow,omitempty" validate:"omitempty,min=0,max=3"`
	SymptomSeverity *int    `json:"symptom_severity,omitempty" validate:"omitempty,min=0,max=3"`

	QuickReturnHours *float64 `json:"quick_return_hours,omitempty" validate:"omitempty,min=0,max=48"`
	ShiftLengthHours *float64 `json:"shift_length_hours,omitempty" validate:"omitempty,min=0,max=24"`
	OvertimeHours    *float64 `json:"overtime_hours,omitempty" validate:"omitempty,min=0,max=12"`
}

// HealthLogResponse is the response body for health log endpoints.
// @Description One day's shift and health record.
type HealthLogResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Date            string    `json:"date" example:"2026-08-29"`
	Shift           string    `json:"shift" example:"N"`
	SleepHours      *float64  `json:"sleep_hours,omitempty"`
	NapHours        *float64  `json:"nap_hours,omitempty"`
	SleepQuality    *int      `json:"sleep_quality,omitempty"`
	SleepTiming     *string   `json:"sleep_timing,omitempty"`
	CaffeineMg      *float64  `json:"caffeine_mg,omitempty"`
	CaffeineLastAt  *string   `json:"caffeine_last_at,omitempty"`
	StressLevel     *int      `json:"stress_level,omitempty"`
	ActivityLevel   *int      `json:"activity_level,omitempty"`
	MoodLevel       *int      `json:"mood_level,omitempty"`
	FatigueLevel    *float64  `json:"fatigue_level,omitempty"`
	MenstrualStatus *string   `json:"menstrual_status,omitempty"`
	MenstrualFlow   *int      `json:"menstrual_flow,omitempty"`
	SymptomSeverity *int      `json:"symptom_severity,omitempty"`

	QuickReturnHours *float64 `json:"quick_return_hours,omitempty"`
	ShiftLengthHours *float64 `json:"shift_length_hours,omitempty"`
	OvertimeHours    *float64 `json:"overtime_hours,omitempty"`

	ClientRequestID *string   `json:"client_request_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (h *HealthLog) ToResponse() HealthLogResponse {
	return HealthLogResponse{
		ID:               h.ID,
		UserID:           h.UserID,
		Date:             h.DateISO(),
		Shift:            h.Shift,
		SleepHours:       h.SleepHours,
		NapHours:         h.NapHours,
		SleepQuality:     h.SleepQuality,
		SleepTiming:      h.SleepTiming,
		CaffeineMg:       h.CaffeineMg,
		CaffeineLastAt:   h.CaffeineLastAt,
		StressLevel:      h.StressLevel,
		ActivityLevel:    h.ActivityLevel,
		MoodLevel:        h.MoodLevel,
		FatigueLevel:     h.FatigueLevel,
		MenstrualStatus:  h.MenstrualStatus,
		MenstrualFlow:    h.MenstrualFlow,
		SymptomSeverity:  h.SymptomSeverity,
		QuickReturnHours: h.QuickReturnHours,
		ShiftLengthHours: h.ShiftLengthHours,
		OvertimeHours:    h.OvertimeHours,
		ClientRequestID:  h.ClientRequestID,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

// HealthLogListResponse is the response body for listing health logs.
// @Description Paginated list of daily health logs.
type HealthLogListResponse struct {
	// Array of daily records, newest first
	Data []HealthLogResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// HealthLogFilter contains filter parameters for listing health logs
type HealthLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
