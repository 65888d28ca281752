package jobs

import (
	"context"
	"log/slog"
	"time"

	"mealorder/internal/core/application/usecases/commands"
	"mealorder/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DraftExpiryJob purges abandoned ordering dialogs. Runs hourly and deletes
// drafts that have not seen a message within the configured idle window.
type DraftExpiryJob struct {
	handler    commands.PurgeIdleDraftsCommandHandler
	clock      kernel.Clock
	idleWindow time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDraftExpiryJob creates a new job for purging idle drafts.
// idleWindow is how long a draft may sit untouched before it is removed.
func NewDraftExpiryJob(
	handler commands.PurgeIdleDraftsCommandHandler,
	clock kernel.Clock,
	idleWindow time.Duration,
	logger *slog.Logger,
) *DraftExpiryJob {
	return &DraftExpiryJob{
		handler:    handler,
		clock:      clock,
		idleWindow: idleWindow,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "draft_expiry_job"),
	}
}

// Start begins the draft expiry job to run at the top of every hour.
func (j *DraftExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeIdleDraftsCommand(j.clock.Now().Add(-j.idleWindow))
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job failed to build command", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged idle drafts", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft expiry job started (running hourly)")
	return nil
}

// Stop stops the draft expiry job.
func (j *DraftExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft expiry job stopped")
}
