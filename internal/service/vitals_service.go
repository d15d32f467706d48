package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/engine"
	"github.com/sangjun0330/mnl-recovery/internal/repository"
	"github.com/sangjun0330/mnl-recovery/pkg/dateutil"
)

const (
	// DefaultVitalsWindowDays is the default range for the vitals series.
	DefaultVitalsWindowDays = 30

	// MaxVitalsRangeDays bounds a single request; longer histories still get
	// folded (state needs every day since the first log), this only caps the
	// days returned.
	MaxVitalsRangeDays = 180
)

// VitalsService runs the daily recovery simulation over stored logs.
type VitalsService interface {
	// Compute simulates every day from the user's first log through the end
	// of the requested range and returns the slice inside [from, to].
	Compute(ctx context.Context, userID uuid.UUID, req domain.VitalsRequest) (*domain.VitalsResponse, error)
	// Current returns the state after folding everything up to today.
	Current(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error)
}

type vitalsService struct {
	logRepo        repository.HealthLogRepository
	userRepo       repository.UserRepository
	defaultVersion engine.Version
}

// NewVitalsService creates a new VitalsService. defaultVersion is used when a
// request does not pin an engine version; empty means the canonical engine.
func NewVitalsService(logRepo repository.HealthLogRepository, userRepo repository.UserRepository, defaultVersion engine.Version) VitalsService {
	if defaultVersion == "" {
		defaultVersion = engine.VersionCanonical
	}
	return &vitalsService{
		logRepo:        logRepo,
		userRepo:       userRepo,
		defaultVersion: defaultVersion,
	}
}

func (s *vitalsService) Compute(ctx context.Context, userID uuid.UUID, req domain.VitalsRequest) (*domain.VitalsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	to := req.To
	if to == "" {
		to = dateutil.Today()
	}
	from := req.From
	if from == "" {
		from = dateutil.AddDays(to, -(DefaultVitalsWindowDays - 1))
	}

	fromDate, err := dateutil.ParseISO(from)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	toDate, err := dateutil.ParseISO(to)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if fromDate.After(toDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if dateutil.DaysBetween(from, to) >= MaxVitalsRangeDays {
		return nil, domain.ErrInvalidDateRange
	}

	version := s.defaultVersion
	if req.Version != "" {
		version = engine.Version(req.Version)
	}

	tracer := otel.Tracer("mnl-recovery-api/vitals")
	ctx, span := tracer.Start(ctx, "VitalsService.Compute",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("range.from", from),
			attribute.String("range.to", to),
			attribute.String("engine.version", string(version)),
		),
	)
	defer span.End()

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id": userID.String(),
		"from":    from,
		"to":      to,
		"engine":  string(version),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	// The fold must start at the user's very first log, not at the requested
	// range, or the state entering the range would be wrong.
	simStart := fromDate
	earliest, err := s.logRepo.EarliestDate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if earliest != nil && earliest.Before(simStart) {
		simStart = *earliest
	}

	logs, err := s.logRepo.ListRangeAsc(ctx, userID, simStart, toDate)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*domain.HealthLog, len(logs))
	for i := range logs {
		byDate[logs[i].DateISO()] = &logs[i]
	}

	days := buildDailyInputs(user, byDate, dateutil.FormatISO(simStart), dateutil.FormatISO(toDate))

	eng := engine.New(version)
	results := engine.Simulate(eng, user.EngineProfile(), engine.DefaultHiddenState(), days)

	response := &domain.VitalsResponse{
		From:   from,
		To:     to,
		Engine: string(eng.Version()),
		Days:   make([]domain.VitalsDay, 0, dateutil.DaysBetween(from, to)+1),
	}
	for i, r := range results {
		if r.Date < from {
			continue
		}
		_, logged := byDate[r.Date]
		response.Days = append(response.Days, domain.VitalsDay{
			Date:          r.Date,
			Shift:         string(days[i].Shift),
			Logged:        logged,
			BodyBattery:   r.State.BodyBattery,
			MentalBattery: r.State.MentalBattery,
			Diagnostics:   r.Diagnostics,
		})
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		response.Current = domain.VitalsCurrent{
			Date:          last.Date,
			BodyBattery:   last.State.BodyBattery,
			MentalBattery: last.State.MentalBattery,
			SatBody:       last.Diagnostics.SatBody,
			SatMental:     last.Diagnostics.SatMental,
			SleepDebt:     last.State.SleepDebt,
			NightStreak:   last.State.NightStreak,
		}
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(response.Current); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func (s *vitalsService) Current(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error) {
	resp, err := s.Compute(ctx, userID, domain.VitalsRequest{})
	if err != nil {
		return nil, err
	}
	return &resp.Current, nil
}

// buildDailyInputs assembles one engine input per calendar day between from
// and to inclusive. Days without a log become empty inputs carrying only the
// staleness metadata; cycle settings always come from the user profile while
// same-day menstrual signals come from the log.
func buildDailyInputs(user *domain.User, byDate map[string]*domain.HealthLog, from, to string) []engine.DailyInputs {
	total := dateutil.DaysBetween(from, to) + 1
	if total < 1 {
		return nil
	}

	cycle := user.CycleSettings()

	days := make([]engine.DailyInputs, 0, total)
	daysSinceLog := -1 // -1 until the first log is seen
	hasPriorSleep := false

	for i := 0; i < total; i++ {
		date := dateutil.AddDays(from, i)
		log := byDate[date]

		var in engine.DailyInputs
		if log != nil {
			in = log.ToInputs()
			rel := logReliability(log)
			in.InputReliability = &rel
			daysSinceLog = 0
		} else {
			in = engine.DailyInputs{Date: date, Shift: engine.ShiftOff}
			if daysSinceLog >= 0 {
				daysSinceLog++
				gap := daysSinceLog
				rel := staleReliability(gap)
				in.DaysSinceAnyInput = &gap
				in.InputReliability = &rel
			}
		}

		if cycle != nil {
			in.LastPeriodStart = &cycle.LastPeriodStart
			in.CycleLengthAvg = &cycle.CycleLengthAvg
			in.PeriodLength = &cycle.PeriodLength
		}

		in.HasPriorSleepLog = hasPriorSleep
		if in.SleepHours != nil {
			hasPriorSleep = true
		}

		days = append(days, in)
	}
	return days
}

// logReliability grades how complete a day's log is.
func logReliability(log *domain.HealthLog) float64 {
	rel := 0.7
	if log.SleepHours != nil {
		rel += 0.2
	}
	if log.StressLevel != nil || log.MoodLevel != nil || log.FatigueLevel != nil {
		rel += 0.1
	}
	if rel > 1 {
		rel = 1
	}
	return rel
}

// staleReliability decays confidence as days pass without any log.
func staleReliability(gap int) float64 {
	rel := 1.0 - 0.15*float64(gap)
	if rel < 0.3 {
		rel = 0.3
	}
	return rel
}
