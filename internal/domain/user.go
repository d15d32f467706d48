package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/engine"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`

	// Chronotype: 0 = evening type, 1 = morning type.
	Chronotype          float64 `gorm:"not null;default:0.5" json:"chronotype"`
	CaffeineSensitivity float64 `gorm:"not null;default:1.0" json:"caffeine_sensitivity"`

	// Cycle settings, all optional.
	LastPeriodStart *time.Time `gorm:"type:date" json:"last_period_start,omitempty"`
	CycleLengthAvg  *int       `gorm:"type:smallint" json:"cycle_length_avg,omitempty"`
	PeriodLength    *int       `gorm:"type:smallint" json:"period_length,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// EngineProfile converts stored settings into an engine profile, falling
// back to defaults for unset values.
func (u *User) EngineProfile() engine.Profile {
	p := engine.DefaultProfile()
	p.Chronotype = u.Chronotype
	if u.CaffeineSensitivity > 0 {
		p.CaffeineSensitivity = u.CaffeineSensitivity
	}
	return p
}

// CycleSettings exposes the menstrual cycle settings in engine form.
// Returns nil when the user never recorded a period start.
func (u *User) CycleSettings() *engine.CycleSettings {
	if u.LastPeriodStart == nil {
		return nil
	}
	s := &engine.CycleSettings{
		LastPeriodStart: u.LastPeriodStart.UTC().Format("2006-01-02"),
		CycleLengthAvg:  28,
		PeriodLength:    5,
	}
	if u.CycleLengthAvg != nil {
		s.CycleLengthAvg = *u.CycleLengthAvg
	}
	if u.PeriodLength != nil {
		s.PeriodLength = *u.PeriodLength
	}
	return s
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone            string   `json:"timezone" validate:"required,timezone"`
	Chronotype          *float64 `json:"chronotype,omitempty" validate:"omitempty,min=0,max=1"`
	CaffeineSensitivity *float64 `json:"caffeine_sensitivity,omitempty" validate:"omitempty,min=0.5,max=1.5"`
}

// UpdateProfileRequest is the request body for partial profile updates
type UpdateProfileRequest struct {
	Timezone            *string  `json:"timezone,omitempty" validate:"omitempty,timezone"`
	Chronotype          *float64 `json:"chronotype,omitempty" validate:"omitempty,min=0,max=1"`
	CaffeineSensitivity *float64 `json:"caffeine_sensitivity,omitempty" validate:"omitempty,min=0.5,max=1.5"`
	LastPeriodStart     *string  `json:"last_period_start,omitempty" validate:"omitempty,iso_date"`
	CycleLengthAvg      *int     `json:"cycle_length_avg,omitempty" validate:"omitempty,min=20,max=45"`
	PeriodLength        *int     `json:"period_length,omitempty" validate:"omitempty,min=2,max=10"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	Timezone            string    `json:"timezone"`
	Chronotype          float64   `json:"chronotype"`
	CaffeineSensitivity float64   `json:"caffeine_sensitivity"`
	LastPeriodStart     *string   `json:"last_period_start,omitempty"`
	CycleLengthAvg      *int      `json:"cycle_length_avg,omitempty"`
	PeriodLength        *int      `json:"period_length,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:                  u.ID,
		Timezone:            u.Timezone,
		Chronotype:          u.Chronotype,
		CaffeineSensitivity: u.CaffeineSensitivity,
		CycleLengthAvg:      u.CycleLengthAvg,
		PeriodLength:        u.PeriodLength,
		CreatedAt:           u.CreatedAt,
	}
	if u.LastPeriodStart != nil {
		iso := u.LastPeriodStart.UTC().Format("2006-01-02")
		resp.LastPeriodStart = &iso
	}
	return resp
}
