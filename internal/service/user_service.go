package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/repository"
	"github.com/sangjun0330/mnl-recovery/pkg/dateutil"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:                  uuid.New(),
		Timezone:            req.Timezone,
		Chronotype:          0.5,
		CaffeineSensitivity: 1.0,
	}
	if req.Chronotype != nil {
		user.Chronotype = *req.Chronotype
	}
	if req.CaffeineSensitivity != nil {
		user.CaffeineSensitivity = *req.CaffeineSensitivity
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update of recovery and cycle settings.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil && *req.Timezone != "" {
		user.Timezone = *req.Timezone
	}
	if req.Chronotype != nil {
		user.Chronotype = *req.Chronotype
	}
	if req.CaffeineSensitivity != nil {
		user.CaffeineSensitivity = *req.CaffeineSensitivity
	}
	if req.LastPeriodStart != nil {
		start, err := dateutil.ParseISO(*req.LastPeriodStart)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		user.LastPeriodStart = &start
	}
	if req.CycleLengthAvg != nil {
		user.CycleLengthAvg = req.CycleLengthAvg
	}
	if req.PeriodLength != nil {
		user.PeriodLength = req.PeriodLength
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
