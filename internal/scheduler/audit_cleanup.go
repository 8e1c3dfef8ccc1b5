// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/logging"
	"github.com/mrlokans/storyplanner/internal/tasks"
)

// TaskEnqueuer adds tasks to the background queue.
type TaskEnqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

type enqueueFunc func(task backlite.Task) error

// AuditCleanupScheduler periodically enqueues the audit cleanup task.
type AuditCleanupScheduler struct {
	schedule      string
	retentionDays int
	enqueue       enqueueFunc
	logger        *zap.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewAuditCleanupScheduler creates a scheduler that enqueues cleanup tasks
// on the given five-field cron schedule.
func NewAuditCleanupScheduler(queue TaskEnqueuer, schedule string, retentionDays int, logger *zap.Logger) *AuditCleanupScheduler {
	s := &AuditCleanupScheduler{
		schedule:      schedule,
		retentionDays: retentionDays,
		logger:        logging.OrNop(logger).Named("scheduler"),
		cron:          cron.New(cron.WithParser(cronParser)),
	}
	s.enqueue = func(task backlite.Task) error {
		_, err := queue.Add(task).Save()
		return err
	}
	return s
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule reports whether expr is a valid five-field cron expression.
func ValidateSchedule(expr string) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", expr, err)
	}
	return nil
}

// Start schedules the job. An empty schedule disables the scheduler.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.schedule == "" {
		s.logger.Info("audit cleanup scheduler disabled")
		return nil
	}
	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.RunNow)
	if err != nil {
		return fmt.Errorf("failed to schedule audit cleanup: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("audit cleanup scheduler started",
		zap.String("schedule", s.schedule),
		zap.Int("retention_days", s.retentionDays),
		zap.Timep("next_run", s.nextRunLocked()))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("audit cleanup scheduler stopped")
}

// RunNow enqueues a cleanup task immediately.
func (s *AuditCleanupScheduler) RunNow() {
	if err := s.enqueue(tasks.CleanupAuditEventsTask{RetentionDays: s.retentionDays}); err != nil {
		s.logger.Error("failed to enqueue audit cleanup", zap.Error(err))
		return
	}
	s.logger.Debug("audit cleanup enqueued")
}

// IsRunning returns whether the scheduler is active.
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next cleanup will be enqueued.
func (s *AuditCleanupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isRunning {
		return nil
	}
	return s.nextRunLocked()
}

func (s *AuditCleanupScheduler) nextRunLocked() *time.Time {
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
