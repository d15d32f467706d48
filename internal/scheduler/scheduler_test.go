package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/recorder"
)

type stubUsers struct {
	ids []uuid.UUID
	err error
}

func (s *stubUsers) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.ids, s.err
}

type stubVitals struct {
	failFor map[uuid.UUID]bool
}

func (s *stubVitals) Current(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error) {
	if s.failFor[userID] {
		return nil, errors.New("simulation failed")
	}
	return &domain.VitalsCurrent{Date: "2026-08-30", BodyBattery: 55, MentalBattery: 50, SleepDebt: 3}, nil
}

type captureRecorder struct {
	snapshots []*recorder.BatterySnapshot
	err       error
}

func (c *captureRecorder) RecordSnapshot(s *recorder.BatterySnapshot) error {
	if c.err != nil {
		return c.err
	}
	c.snapshots = append(c.snapshots, s)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func TestScheduler_RunRecomputeNow(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rec := &captureRecorder{}
	s := NewScheduler(context.Background(), &stubUsers{ids: []uuid.UUID{a, b}}, &stubVitals{}, rec)

	s.RunRecomputeNow()

	if len(rec.snapshots) != 2 {
		t.Fatalf("snapshots recorded = %d, want 2", len(rec.snapshots))
	}
	if rec.snapshots[0].UserID != a.String() {
		t.Errorf("first snapshot user = %s, want %s", rec.snapshots[0].UserID, a)
	}
	if rec.snapshots[0].Date != "2026-08-30" || rec.snapshots[0].BodyBattery != 55 {
		t.Errorf("snapshot = %+v, want date 2026-08-30 and battery 55", rec.snapshots[0])
	}
}

func TestScheduler_RunRecomputeNow_SkipsFailedUsers(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rec := &captureRecorder{}
	vitals := &stubVitals{failFor: map[uuid.UUID]bool{a: true}}
	s := NewScheduler(context.Background(), &stubUsers{ids: []uuid.UUID{a, b}}, vitals, rec)

	s.RunRecomputeNow()

	if len(rec.snapshots) != 1 {
		t.Fatalf("snapshots recorded = %d, want 1", len(rec.snapshots))
	}
	if rec.snapshots[0].UserID != b.String() {
		t.Errorf("recorded user = %s, want %s", rec.snapshots[0].UserID, b)
	}
}

func TestScheduler_RunRecomputeNow_ListError(t *testing.T) {
	rec := &captureRecorder{}
	s := NewScheduler(context.Background(), &stubUsers{err: errors.New("db down")}, &stubVitals{}, rec)

	s.RunRecomputeNow()

	if len(rec.snapshots) != 0 {
		t.Errorf("snapshots recorded = %d, want 0", len(rec.snapshots))
	}
}

func TestScheduler_Register(t *testing.T) {
	s := NewScheduler(context.Background(), &stubUsers{}, &stubVitals{}, &captureRecorder{})

	if err := s.Register("0 30 3 * * *"); err != nil {
		t.Errorf("Register() error = %v", err)
	}
	if err := s.Register("every night"); err == nil {
		t.Error("Register() with malformed expression should fail")
	}
}
