package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/engine"
	"github.com/sangjun0330/mnl-recovery/internal/engine/forecast"
	"github.com/sangjun0330/mnl-recovery/internal/repository"
	"github.com/sangjun0330/mnl-recovery/pkg/dateutil"
)

// DefaultForecastDays is the horizon used when the request leaves it unset.
const DefaultForecastDays = 3

// ForecastService projects the battery hour by hour over the upcoming
// schedule, seeded from the simulated current state.
type ForecastService interface {
	Forecast(ctx context.Context, userID uuid.UUID, req domain.ForecastRequest) (*domain.ForecastResponse, error)
}

type forecastService struct {
	logRepo repository.HealthLogRepository
	vitals  VitalsService
}

// NewForecastService creates a new ForecastService.
func NewForecastService(logRepo repository.HealthLogRepository, vitals VitalsService) ForecastService {
	return &forecastService{
		logRepo: logRepo,
		vitals:  vitals,
	}
}

func (s *forecastService) Forecast(ctx context.Context, userID uuid.UUID, req domain.ForecastRequest) (*domain.ForecastResponse, error) {
	from := req.From
	if from == "" {
		from = dateutil.Today()
	}
	days := req.Days
	if days <= 0 {
		days = DefaultForecastDays
	}

	fromDate, err := dateutil.ParseISO(from)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Seed from the fold up to today. Current also verifies the user exists.
	current, err := s.vitals.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The schedule comes from logs already entered for future dates; the
	// roster is typically known weeks ahead. Unlogged days count as OFF.
	toDate := fromDate.AddDate(0, 0, days-1)
	logs, err := s.logRepo.ListRangeAsc(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	schedule := make(map[string]engine.ShiftType, len(logs))
	for i := range logs {
		schedule[logs[i].DateISO()] = engine.ShiftType(logs[i].Shift)
	}

	projected := forecast.Forecast(forecast.Request{
		StartDate:      from,
		Days:           days,
		Schedule:       schedule,
		InitialBattery: current.BodyBattery,
	})

	return &domain.ForecastResponse{
		From:           from,
		InitialBattery: current.BodyBattery,
		Days:           projected,
	}, nil
}
