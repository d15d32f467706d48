package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
)

func TestUserService_Create_Defaults(t *testing.T) {
	var created *domain.User
	repo := &MockUserRepository{
		createFunc: func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "Asia/Seoul"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.Chronotype != 0.5 {
		t.Errorf("chronotype = %v, want default 0.5", user.Chronotype)
	}
	if user.CaffeineSensitivity != 1.0 {
		t.Errorf("caffeine sensitivity = %v, want default 1.0", user.CaffeineSensitivity)
	}
	if created == nil || created.ID == uuid.Nil {
		t.Error("expected a generated user ID to reach the repository")
	}
}

func TestUserService_Create_ExplicitProfile(t *testing.T) {
	svc := NewUserService(&MockUserRepository{})

	chrono := 0.2
	caffeine := 1.4
	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone:            "Asia/Seoul",
		Chronotype:          &chrono,
		CaffeineSensitivity: &caffeine,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.Chronotype != 0.2 {
		t.Errorf("chronotype = %v, want 0.2", user.Chronotype)
	}
	if user.CaffeineSensitivity != 1.4 {
		t.Errorf("caffeine sensitivity = %v, want 1.4", user.CaffeineSensitivity)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	stored := &domain.User{ID: userID, Timezone: "UTC", Chronotype: 0.5, CaffeineSensitivity: 1.0}
	repo := &MockUserRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id != userID {
				return nil, domain.ErrNotFound
			}
			return stored, nil
		},
	}
	svc := NewUserService(repo)

	chrono := 0.8
	period := "2026-08-18"
	cycleLen := 30
	user, err := svc.UpdateProfile(context.Background(), userID, &domain.UpdateProfileRequest{
		Chronotype:      &chrono,
		LastPeriodStart: &period,
		CycleLengthAvg:  &cycleLen,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if user.Chronotype != 0.8 {
		t.Errorf("chronotype = %v, want 0.8", user.Chronotype)
	}
	if user.LastPeriodStart == nil || user.LastPeriodStart.Format("2006-01-02") != "2026-08-18" {
		t.Errorf("last period start = %v, want 2026-08-18", user.LastPeriodStart)
	}
	if user.CycleLengthAvg == nil || *user.CycleLengthAvg != 30 {
		t.Errorf("cycle length = %v, want 30", user.CycleLengthAvg)
	}
	// Untouched fields survive
	if user.CaffeineSensitivity != 1.0 {
		t.Errorf("caffeine sensitivity = %v, want untouched 1.0", user.CaffeineSensitivity)
	}
}

func TestUserService_UpdateProfile_BadPeriodDate(t *testing.T) {
	svc := NewUserService(&MockUserRepository{})

	bad := "18.08.2026"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &domain.UpdateProfileRequest{
		LastPeriodStart: &bad,
	})
	if err != domain.ErrInvalidInput {
		t.Errorf("UpdateProfile() error = %v, want ErrInvalidInput", err)
	}
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	repo := &MockUserRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewUserService(repo)

	chrono := 0.8
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &domain.UpdateProfileRequest{Chronotype: &chrono})
	if err != domain.ErrNotFound {
		t.Errorf("UpdateProfile() error = %v, want ErrNotFound", err)
	}
}
