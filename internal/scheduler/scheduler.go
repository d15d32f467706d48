package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/recorder"

	"github.com/robfig/cron/v3"
)

// userLister enumerates the users due for the nightly recompute.
type userLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// vitalsComputer produces the current simulated state for one user.
type vitalsComputer interface {
	Current(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error)
}

// Scheduler runs the nightly battery recompute over all users.
type Scheduler struct {
	Cron     *cron.Cron
	Users    userLister
	Vitals   vitalsComputer
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, users userLister, vitals vitalsComputer, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Users:    users,
		Vitals:   vitals,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register registers the nightly recompute task.
func (s *Scheduler) Register(recomputeCron string) error {
	if _, err := s.Cron.AddFunc(recomputeCron, s.recomputeTask); err != nil {
		return fmt.Errorf("register recompute task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRecomputeNow executes the recompute task immediately (for manual trigger).
func (s *Scheduler) RunRecomputeNow() {
	s.recomputeTask()
}

func (s *Scheduler) recomputeTask() {
	log.Println("[INFO] running nightly battery recompute")

	ids, err := s.Users.ListIDs(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return
	}

	var recorded, failed int
	for _, id := range ids {
		cur, err := s.Vitals.Current(s.Ctx, id)
		if err != nil {
			log.Printf("[ERROR] recompute user %s: %v", id, err)
			failed++
			continue
		}

		if err := s.Recorder.RecordSnapshot(&recorder.BatterySnapshot{
			UserID:        id.String(),
			Date:          cur.Date,
			BodyBattery:   cur.BodyBattery,
			MentalBattery: cur.MentalBattery,
			SatBody:       cur.SatBody,
			SatMental:     cur.SatMental,
			SleepDebt:     cur.SleepDebt,
			NightStreak:   cur.NightStreak,
		}); err != nil {
			log.Printf("[ERROR] record snapshot for %s: %v", id, err)
			failed++
			continue
		}
		recorded++
	}

	log.Printf("[INFO] nightly recompute done: %d recorded, %d failed", recorded, failed)
}
