package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	createFunc  func(ctx context.Context, user *domain.User) error
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateFunc  func(ctx context.Context, user *domain.User) error
	existsFunc  func(ctx context.Context, id uuid.UUID) (bool, error)
	listIDsFunc func(ctx context.Context) ([]uuid.UUID, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{ID: id, Timezone: "UTC", Chronotype: 0.5, CaffeineSensitivity: 1.0}, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if m.listIDsFunc != nil {
		return m.listIDsFunc(ctx)
	}
	return nil, nil
}

// MockHealthLogRepository is a mock implementation of HealthLogRepository
type MockHealthLogRepository struct {
	createFunc               func(ctx context.Context, log *domain.HealthLog) error
	updateFunc               func(ctx context.Context, log *domain.HealthLog) error
	getByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.HealthLog, error)
	getByDateFunc            func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error)
	listFunc                 func(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) ([]domain.HealthLog, error)
	listRangeAscFunc         func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthLog, error)
	earliestDateFunc         func(ctx context.Context, userID uuid.UUID) (*time.Time, error)
	getByClientRequestIDFunc func(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.HealthLog, error)
}

func (m *MockHealthLogRepository) Create(ctx context.Context, log *domain.HealthLog) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, log)
	}
	log.ID = uuid.New()
	return nil
}

func (m *MockHealthLogRepository) Update(ctx context.Context, log *domain.HealthLog) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, log)
	}
	return nil
}

func (m *MockHealthLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthLog, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockHealthLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, date)
	}
	return nil, domain.ErrNotFound
}

func (m *MockHealthLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) ([]domain.HealthLog, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return nil, nil
}

func (m *MockHealthLogRepository) ListRangeAsc(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthLog, error) {
	if m.listRangeAscFunc != nil {
		return m.listRangeAscFunc(ctx, userID, from, to)
	}
	return nil, nil
}

func (m *MockHealthLogRepository) EarliestDate(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	if m.earliestDateFunc != nil {
		return m.earliestDateFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockHealthLogRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.HealthLog, error) {
	if m.getByClientRequestIDFunc != nil {
		return m.getByClientRequestIDFunc(ctx, userID, clientRequestID)
	}
	return nil, nil
}

// fakeAdviceLLM is a canned AdviceLLM implementation
type fakeAdviceLLM struct {
	generateFunc func(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error)
	lastContext  *domain.AdviceContext
}

func (f *fakeAdviceLLM) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error) {
	f.lastContext = adviceCtx
	if f.generateFunc != nil {
		return f.generateFunc(ctx, adviceCtx)
	}
	return &domain.LLMAdviceOutput{
		Summary:      "Steady recovery.",
		Observations: []string{"Sleep debt is stable"},
		Guidance:     []string{"Hold the current sleep schedule"},
	}, nil
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func mustDate(iso string) time.Time {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return t
}
