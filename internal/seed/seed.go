package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/blaisecz/sleep-scoring/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededNights = 30

// Stage labels as the wearable platforms actually emit them; the parser
// normalizes these, so seeding through the full pipeline keeps the demo
// data honest.
var lightLabels = []string{"asleepCore", "HKCategoryValueSleepAnalysisAsleepCore", "light", "asleepUnspecified"}
var deepLabels = []string{"asleepDeep", "HKCategoryValueSleepAnalysisAsleepDeep", "deep"}
var remLabels = []string{"asleepREM", "HKCategoryValueSleepAnalysisAsleepREM", "rem"}
var awakeLabels = []string{"awake", "HKCategoryValueSleepAnalysisAwake"}

// Run seeds the database with sample users and pushes synthetic wearable
// exports through the scoring pipeline. Safe to call multiple times.
func Run(db *gorm.DB, scorer service.SleepScoreService) error {
	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	for _, user := range users {
		var existing int64
		if err := db.Model(&domain.SleepSession{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count sessions for %s: %w", user.ID, err)
		}
		if existing > 0 {
			continue
		}
		if err := seedNightsForUser(ctx, scorer, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedNightsForUser(ctx context.Context, scorer service.SleepScoreService, user domain.User, rng *rand.Rand) error {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)
	for i := seededNights; i >= 1; i-- {
		date := now.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, loc)
		nightMinutes := 360 + rng.Intn(180)

		req := &domain.ScoreSleepRequest{
			Segments: nightExport(bedtime, nightMinutes, rng),
		}

		// Roughly every third day gets an afternoon nap in the same
		// export, the way a full-day wearable sync looks.
		if rng.Intn(3) == 0 {
			napStart := time.Date(date.Year(), date.Month(), date.Day(), 14+rng.Intn(2), rng.Intn(60), 0, 0, loc).AddDate(0, 0, 1)
			req.Segments = append(req.Segments, napExport(napStart, 20+rng.Intn(40), rng)...)
		}

		if _, err := scorer.ScoreNight(ctx, user.ID, req); err != nil {
			return fmt.Errorf("failed to seed night for %s: %w", user.ID, err)
		}
	}
	return nil
}

// nightExport lays stage blocks end to end from bedtime until the target
// span is filled, cycling light -> deep -> light -> rem with an occasional
// awake bout.
func nightExport(start time.Time, totalMinutes int, rng *rand.Rand) []domain.RawSegmentRequest {
	var segments []domain.RawSegmentRequest
	cursor := start
	remaining := totalMinutes

	stagePool := [][]string{lightLabels, deepLabels, lightLabels, remLabels}
	cycle := 0
	for remaining > 0 {
		labels := stagePool[cycle%len(stagePool)]
		minutes := 20 + rng.Intn(50)
		if minutes > remaining {
			minutes = remaining
		}
		segments = append(segments, segment(cursor, minutes, labels[rng.Intn(len(labels))]))
		cursor = cursor.Add(time.Duration(minutes) * time.Minute)
		remaining -= minutes
		cycle++

		// Brief awakening a few times per night.
		if remaining > 10 && rng.Intn(4) == 0 {
			awakeMinutes := 2 + rng.Intn(4)
			segments = append(segments, segment(cursor, awakeMinutes, awakeLabels[rng.Intn(len(awakeLabels))]))
			cursor = cursor.Add(time.Duration(awakeMinutes) * time.Minute)
			remaining -= awakeMinutes
		}
	}
	return segments
}

func napExport(start time.Time, totalMinutes int, rng *rand.Rand) []domain.RawSegmentRequest {
	half := totalMinutes / 2
	return []domain.RawSegmentRequest{
		segment(start, half, lightLabels[rng.Intn(len(lightLabels))]),
		segment(start.Add(time.Duration(half)*time.Minute), totalMinutes-half, deepLabels[rng.Intn(len(deepLabels))]),
	}
}

func segment(start time.Time, minutes int, label string) domain.RawSegmentRequest {
	return domain.RawSegmentRequest{
		StartDate: start,
		EndDate:   start.Add(time.Duration(minutes) * time.Minute),
		Value:     label,
		Source:    "seed",
	}
}
