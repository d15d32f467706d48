package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
)

// mockVitals satisfies VitalsService with canned state
type mockVitals struct {
	computeFunc func(ctx context.Context, userID uuid.UUID, req domain.VitalsRequest) (*domain.VitalsResponse, error)
	currentFunc func(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error)
}

func (m *mockVitals) Compute(ctx context.Context, userID uuid.UUID, req domain.VitalsRequest) (*domain.VitalsResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, req)
	}
	return &domain.VitalsResponse{
		From: "2026-08-01", To: "2026-08-30", Engine: "v2",
		Current: domain.VitalsCurrent{Date: "2026-08-30", BodyBattery: 58, MentalBattery: 54},
	}, nil
}

func (m *mockVitals) Current(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx, userID)
	}
	return &domain.VitalsCurrent{Date: "2026-08-30", BodyBattery: 58, MentalBattery: 54}, nil
}

func TestForecastService_Forecast(t *testing.T) {
	userID := uuid.New()
	repo := &MockHealthLogRepository{
		listRangeAscFunc: func(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]domain.HealthLog, error) {
			return []domain.HealthLog{
				{ID: uuid.New(), UserID: userID, LogDate: mustDate("2026-08-30"), Shift: "N"},
				{ID: uuid.New(), UserID: userID, LogDate: mustDate("2026-08-31"), Shift: "N"},
			}, nil
		},
	}
	svc := NewForecastService(repo, &mockVitals{})

	resp, err := svc.Forecast(context.Background(), userID, domain.ForecastRequest{
		From: "2026-08-30",
		Days: 3,
	})
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if resp.From != "2026-08-30" {
		t.Errorf("from = %s, want 2026-08-30", resp.From)
	}
	if resp.InitialBattery != 58 {
		t.Errorf("initial battery = %v, want seeded 58", resp.InitialBattery)
	}
	if len(resp.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(resp.Days))
	}

	// The first two days follow the night roster, the third has no log and
	// projects as a day off.
	if resp.Days[0].Shift != "N" || resp.Days[1].Shift != "N" {
		t.Errorf("scheduled shifts = %s, %s, want N, N", resp.Days[0].Shift, resp.Days[1].Shift)
	}
	if resp.Days[2].Shift != "OFF" {
		t.Errorf("unscheduled day shift = %s, want OFF", resp.Days[2].Shift)
	}

	for _, day := range resp.Days {
		if len(day.Hours) != 24 {
			t.Errorf("day %s has %d hourly points, want 24", day.Date, len(day.Hours))
		}
		if day.RiskBand == "" {
			t.Errorf("day %s has no risk band", day.Date)
		}
	}
}

func TestForecastService_Forecast_Defaults(t *testing.T) {
	var gotFrom, gotTo time.Time
	repo := &MockHealthLogRepository{
		listRangeAscFunc: func(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]domain.HealthLog, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	svc := NewForecastService(repo, &mockVitals{})

	resp, err := svc.Forecast(context.Background(), uuid.New(), domain.ForecastRequest{})
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if len(resp.Days) != DefaultForecastDays {
		t.Errorf("days = %d, want default %d", len(resp.Days), DefaultForecastDays)
	}
	if got := int(gotTo.Sub(gotFrom).Hours() / 24); got != DefaultForecastDays-1 {
		t.Errorf("schedule window = %d days apart, want %d", got, DefaultForecastDays-1)
	}
}

func TestForecastService_Forecast_BadDate(t *testing.T) {
	svc := NewForecastService(&MockHealthLogRepository{}, &mockVitals{})

	_, err := svc.Forecast(context.Background(), uuid.New(), domain.ForecastRequest{From: "next monday"})
	if err != domain.ErrInvalidInput {
		t.Errorf("Forecast() error = %v, want ErrInvalidInput", err)
	}
}

func TestForecastService_Forecast_UserNotFound(t *testing.T) {
	vitals := &mockVitals{
		currentFunc: func(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewForecastService(&MockHealthLogRepository{}, vitals)

	_, err := svc.Forecast(context.Background(), uuid.New(), domain.ForecastRequest{From: "2026-08-30"})
	if err != domain.ErrNotFound {
		t.Errorf("Forecast() error = %v, want ErrNotFound", err)
	}
}
