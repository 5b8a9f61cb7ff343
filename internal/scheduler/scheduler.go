// Package scheduler runs the periodic portfolio snapshot job.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/sksagor/investment-tracker-backend/internal/service"
)

// Scheduler owns the cron runner for the daily snapshot refresh.
type Scheduler struct {
	cron            *cron.Cron
	snapshotService *service.SnapshotService
}

// New creates a Scheduler with the snapshot job registered on the given
// cron schedule (standard 5-field expression).
func New(snapshotService *service.SnapshotService, schedule string) (*Scheduler, error) {
	s := &Scheduler{
		cron:            cron.New(),
		snapshotService: snapshotService,
	}

	if _, err := s.cron.AddFunc(schedule, s.refreshSnapshot); err != nil {
		return nil, fmt.Errorf("failed to register snapshot schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels future runs and waits for any in-flight job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshSnapshot() {
	snap, err := s.snapshotService.RefreshToday(context.Background())
	if err != nil {
		log.Printf("Scheduled snapshot refresh failed: %v", err)
		return
	}
	log.Printf("Stored portfolio snapshot for %s (%d investments)", snap.Date.Format("2006-01-02"), snap.Count)
}
