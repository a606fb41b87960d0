package scheduler

import (
	"context"
	"log"
	"time"

	"pinflow-backend/internal/pinterest/usecase"
)

// PublishScheduler drives the publisher on a fixed interval. The HTTP
// trigger and this ticker share the same Publisher; the per-post claim
// keeps concurrent invocations from double-publishing.
type PublishScheduler struct {
	publisher *usecase.Publisher
	interval  time.Duration
	stopChan  chan struct{}
}

// NewPublishScheduler creates a new scheduler
func NewPublishScheduler(publisher *usecase.Publisher, interval time.Duration) *PublishScheduler {
	return &PublishScheduler{
		publisher: publisher,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *PublishScheduler) Start() {
	log.Printf("[PublishScheduler] Starting publish scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.runOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stopChan:
				log.Println("[PublishScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *PublishScheduler) Stop() {
	close(s.stopChan)
}

func (s *PublishScheduler) runOnce() {
	summary, err := s.publisher.Run(context.Background(), time.Now())
	if err != nil {
		log.Printf("[PublishScheduler] Publish run failed: %v", err)
		return
	}

	if len(summary.Results) > 0 {
		log.Printf("[PublishScheduler] %s", summary.Message)
	}
}
