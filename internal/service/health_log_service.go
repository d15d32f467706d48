package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/repository"
	"github.com/sangjun0330/mnl-recovery/pkg/dateutil"
	"github.com/sangjun0330/mnl-recovery/pkg/pagination"
)

type HealthLogService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error)
	Update(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateHealthLogRequest) (*domain.HealthLog, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.HealthLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) (*domain.HealthLogListResponse, error)
}

type healthLogService struct {
	repo     repository.HealthLogRepository
	userRepo repository.UserRepository
}

func NewHealthLogService(repo repository.HealthLogRepository, userRepo repository.UserRepository) HealthLogService {
	return &healthLogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create records one day's log. There is at most one log per user per date:
// logging a date that already has one merges the new fields onto the
// existing row instead of failing, so a nurse can fill a day in stages.
// Returns (log, isExisting, error) - isExisting is true when an existing row
// was returned or amended, either via idempotency or the per-date merge.
func (s *healthLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	date, err := dateutil.ParseISO(req.Date)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing log
		}
	}

	// One row per date: merge onto an existing log rather than duplicating
	existing, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil && err != domain.ErrNotFound {
		return nil, false, err
	}
	if existing != nil {
		mergeLogFields(existing, req)
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	log := &domain.HealthLog{
		UserID:           userID,
		LogDate:          date,
		Shift:            req.Shift,
		SleepHours:       req.SleepHours,
		NapHours:         req.NapHours,
		SleepQuality:     req.SleepQuality,
		SleepTiming:      req.SleepTiming,
		CaffeineMg:       req.CaffeineMg,
		CaffeineLastAt:   req.CaffeineLastAt,
		StressLevel:      req.StressLevel,
		ActivityLevel:    req.ActivityLevel,
		MoodLevel:        req.MoodLevel,
		FatigueLevel:     req.FatigueLevel,
		MenstrualStatus:  req.MenstrualStatus,
		MenstrualFlow:    req.MenstrualFlow,
		SymptomSeverity:  req.SymptomSeverity,
		QuickReturnHours: req.QuickReturnHours,
		ShiftLengthHours: req.ShiftLengthHours,
		OvertimeHours:    req.OvertimeHours,
		ClientRequestID:  req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, false, err
	}

	return log, false, nil
}

// Update amends an existing log by ID. The calendar date is immutable; to
// move a day's data, delete and re-create via the per-date merge.
func (s *healthLogService) Update(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateHealthLogRequest) (*domain.HealthLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	log, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if log.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if req.Shift != nil {
		log.Shift = *req.Shift
	}
	applyOptionalFields(log, req)

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *healthLogService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.HealthLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	d, err := dateutil.ParseISO(date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.GetByDate(ctx, userID, d)
}

func (s *healthLogService) List(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) (*domain.HealthLogListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit

	// Trim to actual limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.HealthLogListResponse{
		Data: make([]domain.HealthLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, log := range logs {
		response.Data[i] = log.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(logs) > 0 {
		lastLog := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:      lastLog.ID,
			LogDate: lastLog.LogDate,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// mergeLogFields overlays the non-nil fields of a create request onto an
// existing row for the same date. The shift is always taken from the newer
// request since schedule corrections are the most common re-log.
func mergeLogFields(log *domain.HealthLog, req *domain.CreateHealthLogRequest) {
	log.Shift = req.Shift
	applyOptionalFields(log, &domain.UpdateHealthLogRequest{
		SleepHours:       req.SleepHours,
		NapHours:         req.NapHours,
		SleepQuality:     req.SleepQuality,
		SleepTiming:      req.SleepTiming,
		CaffeineMg:       req.CaffeineMg,
		CaffeineLastAt:   req.CaffeineLastAt,
		StressLevel:      req.StressLevel,
		ActivityLevel:    req.ActivityLevel,
		MoodLevel:        req.MoodLevel,
		FatigueLevel:     req.FatigueLevel,
		MenstrualStatus:  req.MenstrualStatus,
		MenstrualFlow:    req.MenstrualFlow,
		SymptomSeverity:  req.SymptomSeverity,
		QuickReturnHours: req.QuickReturnHours,
		ShiftLengthHours: req.ShiftLengthHours,
		OvertimeHours:    req.OvertimeHours,
	})
}

func applyOptionalFields(log *domain.HealthLog, req *domain.UpdateHealthLogRequest) {
	if req.SleepHours != nil {
		log.SleepHours = req.SleepHours
	}
	if req.NapHours != nil {
		log.NapHours = req.NapHours
	}
	if req.SleepQuality != nil {
		log.SleepQuality = req.SleepQuality
	}
	if req.SleepTiming != nil {
		log.SleepTiming = req.SleepTiming
	}
	if req.CaffeineMg != nil {
		log.CaffeineMg = req.CaffeineMg
	}
	if req.CaffeineLastAt != nil {
		log.CaffeineLastAt = req.CaffeineLastAt
	}
	if req.StressLevel != nil {
		log.StressLevel = req.StressLevel
	}
	if req.ActivityLevel != nil {
		log.ActivityLevel = req.ActivityLevel
	}
	if req.MoodLevel != nil {
		log.MoodLevel = req.MoodLevel
	}
	if req.FatigueLevel != nil {
		log.FatigueLevel = req.FatigueLevel
	}
	if req.MenstrualStatus != nil {
		log.MenstrualStatus = req.MenstrualStatus
	}
	if req.MenstrualFlow != nil {
		log.MenstrualFlow = req.MenstrualFlow
	}
	if req.SymptomSeverity != nil {
		log.SymptomSeverity = req.SymptomSeverity
	}
	if req.QuickReturnHours != nil {
		log.QuickReturnHours = req.QuickReturnHours
	}
	if req.ShiftLengthHours != nil {
		log.ShiftLengthHours = req.ShiftLengthHours
	}
	if req.OvertimeHours != nil {
		log.OvertimeHours = req.OvertimeHours
	}
}
