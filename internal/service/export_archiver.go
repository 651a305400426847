package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-dashboard-api/pkg/jobs"
	"github.com/noah-isme/school-dashboard-api/pkg/storage"
)

// ExportArchiver keeps a copy of every generated report download on disk.
// Archiving runs on a background queue so the download response never waits
// on disk I/O.
type ExportArchiver struct {
	store     *storage.LocalStorage
	queue     *jobs.Queue
	retention time.Duration
	logger    *zap.Logger
}

// NewExportArchiver constructs the archiver around a storage directory.
func NewExportArchiver(store *storage.LocalStorage, retention time.Duration, logger *zap.Logger) *ExportArchiver {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &ExportArchiver{
		store:     store,
		retention: retention,
		logger:    logger,
	}
	a.queue = jobs.NewQueue("export-archive", a.handle, jobs.QueueConfig{
		Workers: 1,
		Logger:  logger,
	})
	return a
}

// Start begins the archive workers and prunes expired archives.
func (a *ExportArchiver) Start(ctx context.Context) {
	if a == nil {
		return
	}
	a.queue.Start(ctx)
	if a.retention > 0 {
		deleted, err := a.store.CleanupOlderThan(a.retention)
		if err != nil {
			a.logger.Warn("export archive cleanup failed", zap.Error(err))
			return
		}
		if len(deleted) > 0 {
			a.logger.Info("expired export archives removed", zap.Int("count", len(deleted)))
		}
	}
}

// Stop drains the archive queue.
func (a *ExportArchiver) Stop() {
	if a == nil {
		return
	}
	a.queue.Stop()
}

// Archive queues the exported report for persistence. Failures are logged,
// never surfaced to the caller.
func (a *ExportArchiver) Archive(report *ExportedReport) {
	if a == nil || report == nil {
		return
	}
	err := a.queue.Enqueue(jobs.Job{
		ID:      report.Filename,
		Type:    "archive",
		Payload: report,
	})
	if err != nil {
		a.logger.Warn("export archive enqueue failed", zap.String("filename", report.Filename), zap.Error(err))
	}
}

func (a *ExportArchiver) handle(_ context.Context, job jobs.Job) error {
	report, ok := job.Payload.(*ExportedReport)
	if !ok {
		return fmt.Errorf("unexpected payload for job %s", job.ID)
	}
	if _, err := a.store.Save(report.Filename, report.Content); err != nil {
		return err
	}
	a.logger.Debug("export archived", zap.String("filename", report.Filename))
	return nil
}
