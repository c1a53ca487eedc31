package utils

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
)

// StartDailyJob runs job every day at the given "HH:MM" in loc. The returned
// scheduler must be stopped on shutdown.
func StartDailyJob(loc *time.Location, at string, job func()) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(loc)
	if _, err := s.Every(1).Day().At(at).Do(job); err != nil {
		return nil, fmt.Errorf("schedule daily job at %s: %w", at, err)
	}
	s.StartAsync()
	return s, nil
}
