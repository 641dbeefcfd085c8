package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 14

// Run seeds the session archive with provider-shaped sample data for local
// development. Safe to call multiple times.
func Run(db *gorm.DB, loc *time.Location) error {
	if err := db.AutoMigrate(&domain.SessionRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().In(loc)

	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		// Main sleep ends on `date`, so it starts the evening before.
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, loc).AddDate(0, 0, -1)
		sleepSeconds := (5 + rng.Intn(5)) * 3600
		wakeup := bedtime.Add(time.Duration(sleepSeconds) * time.Second).Add(time.Duration(20+rng.Intn(40)) * time.Minute)

		efficiency := 80 + rng.Intn(18)
		deep := sleepSeconds / 5
		rem := sleepSeconds / 4
		light := sleepSeconds - deep - rem
		quality := 55 + rng.Intn(40)

		record := domain.SessionRecord{
			ProviderID:        fmt.Sprintf("seed-main-%s", date.Format("2006-01-02")),
			Day:               date.Format("2006-01-02"),
			Type:              domain.SessionTypeMain,
			StartAt:           bedtime,
			EndAt:             wakeup,
			TotalSleepSeconds: sleepSeconds,
			EfficiencyPercent: &efficiency,
			DeepSleepSeconds:  &deep,
			RemSleepSeconds:   &rem,
			LightSleepSeconds: &light,
			QualityScore:      &quality,
		}
		if err := upsertRecord(db, record); err != nil {
			return err
		}

		// Roughly every third day gets an afternoon nap.
		if rng.Intn(3) == 0 {
			napStart := time.Date(date.Year(), date.Month(), date.Day(), 14+rng.Intn(2), rng.Intn(60), 0, 0, loc)
			napSeconds := (20 + rng.Intn(50)) * 60
			nap := domain.SessionRecord{
				ProviderID:        fmt.Sprintf("seed-nap-%s", date.Format("2006-01-02")),
				Day:               date.Format("2006-01-02"),
				Type:              domain.SessionTypeNap,
				StartAt:           napStart,
				EndAt:             napStart.Add(time.Duration(napSeconds) * time.Second),
				TotalSleepSeconds: napSeconds,
			}
			if err := upsertRecord(db, nap); err != nil {
				return err
			}
		}
	}

	log.Println("Seed completed")
	return nil
}

func upsertRecord(db *gorm.DB, record domain.SessionRecord) error {
	err := db.Where("provider_id = ?", record.ProviderID).
		Assign(record).
		FirstOrCreate(&domain.SessionRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to seed session %s: %w", record.ProviderID, err)
	}
	return nil
}
