package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/pkg/pagination"
)

type HealthLogRepository interface {
	Create(ctx context.Context, log *domain.HealthLog) error
	Update(ctx context.Context, log *domain.HealthLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthLog, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) ([]domain.HealthLog, error)
	// ListRangeAsc returns every log in [from, to] in ascending date order,
	// the order the simulation consumes them in.
	ListRangeAsc(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthLog, error)
	// EarliestDate returns the date of the user's first log, or nil when the
	// user has never logged.
	EarliestDate(ctx context.Context, userID uuid.UUID) (*time.Time, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.HealthLog, error)
}

type healthLogRepository struct {
	db *gorm.DB
}

func NewHealthLogRepository(db *gorm.DB) HealthLogRepository {
	return &healthLogRepository{db: db}
}

func (r *healthLogRepository) Create(ctx context.Context, log *domain.HealthLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *healthLogRepository) Update(ctx context.Context, log *domain.HealthLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *healthLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthLog, error) {
	var log domain.HealthLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *healthLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error) {
	var log domain.HealthLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *healthLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) ([]domain.HealthLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date DESC")

	// Apply date filters
	if filter.From != nil {
		query = query.Where("log_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("log_date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with log_date < cursor.LogDate
			// or same date but id < cursor.ID
			query = query.Where(
				"(log_date < ?) OR (log_date = ? AND id < ?)",
				cursor.LogDate, cursor.LogDate, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.HealthLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *healthLogRepository) ListRangeAsc(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthLog, error) {
	var logs []domain.HealthLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ? AND log_date <= ?", userID, from, to).
		Order("log_date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *healthLogRepository) EarliestDate(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var log domain.HealthLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date ASC").
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	date := log.LogDate
	return &date, nil
}

func (r *healthLogRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.HealthLog, error) {
	var log domain.HealthLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &log, nil
}
