package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
)

const seededDays = 40

// rotation is a typical three-shift nurse pattern the seeded logs cycle through.
var rotation = []string{"D", "D", "E", "E", "N", "N", "OFF", "OFF"}

// Run seeds the database with sample users and daily logs. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.HealthLog{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	lastPeriod := time.Now().UTC().AddDate(0, 0, -12)
	cycleLen := 28
	periodLen := 5

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Asia/Seoul", Chronotype: 0.3, CaffeineSensitivity: 1.0,
			LastPeriodStart: &lastPeriod, CycleLengthAvg: &cycleLen, PeriodLength: &periodLen},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "Asia/Seoul", Chronotype: 0.7, CaffeineSensitivity: 1.3},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "America/New_York", Chronotype: 0.5, CaffeineSensitivity: 0.8},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Europe/Amsterdam", Chronotype: 0.5, CaffeineSensitivity: 1.0},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, user := range users {
		if err := seedHealthLogsForUser(db, user, i, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedHealthLogsForUser(db *gorm.DB, user domain.User, offset int, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := seededDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		shift := rotation[(seededDays-1-i+offset)%len(rotation)]

		clientReqID := fmt.Sprintf("seed-%s-%d", user.ID, i)
		entry := domain.HealthLog{
			UserID:          user.ID,
			LogDate:         day,
			Shift:           shift,
			ClientRequestID: &clientReqID,
		}

		sleep := sleepForShift(shift, rng)
		entry.SleepHours = &sleep
		quality := 2 + rng.Intn(3)
		entry.SleepQuality = &quality

		if shift != "OFF" {
			caffeine := float64(80 + rng.Intn(160))
			entry.CaffeineMg = &caffeine
			lastAt := fmt.Sprintf("%02d:00", 8+rng.Intn(8))
			entry.CaffeineLastAt = &lastAt
			stress := 2 + rng.Intn(3)
			entry.StressLevel = &stress
		}

		if rng.Float32() < 0.6 {
			mood := 2 + rng.Intn(3)
			fatigue := float64(2 + rng.Intn(6))
			entry.MoodLevel = &mood
			entry.FatigueLevel = &fatigue
		}

		if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create health log: %w", err)
		}
	}
	return nil
}

func sleepForShift(shift string, rng *rand.Rand) float64 {
	switch shift {
	case "N":
		return 4.5 + rng.Float64()*2 // daytime sleep after a night
	case "E":
		return 6 + rng.Float64()*2
	default:
		return 6.5 + rng.Float64()*2
	}
}
