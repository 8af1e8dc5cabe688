// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
)

const defaultDispatchInterval = time.Minute

// ReminderDispatcher periodically promotes pending reminders whose fire
// time has passed to the active state. It is the only writer of the
// active status: client paths only ever produce pending and completed.
type ReminderDispatcher struct {
	reminders store.ReminderRepository
	interval  time.Duration
	logger    *logger.Logger

	// now is swapped in tests.
	now func() time.Time
}

func NewReminderDispatcher(reminders store.ReminderRepository, cfg config.Workers, logger *logger.Logger) *ReminderDispatcher {
	interval := cfg.DispatchInterval
	if interval <= 0 {
		interval = defaultDispatchInterval
	}

	return &ReminderDispatcher{
		reminders: reminders,
		interval:  interval,
		logger:    logger,
		now:       time.Now,
	}
}

// Run starts the dispatch loop and blocks until ctx is cancelled. One
// promotion pass runs immediately so a restart does not delay overdue
// reminders by a full interval.
func (d *ReminderDispatcher) Run(ctx context.Context) {
	d.logger.Info().Dur("interval", d.interval).Msg("reminder dispatcher started")

	d.dispatch(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("reminder dispatcher stopped")
			return
		case <-ticker.C:
			d.dispatch(ctx)
		}
	}
}

func (d *ReminderDispatcher) dispatch(ctx context.Context) {
	promoted, err := d.reminders.PromotePendingReminders(ctx, d.now().UTC())
	if err != nil {
		d.logger.Err(err).Msg("reminder promotion pass failed")
		return
	}

	if promoted > 0 {
		d.logger.Info().Int64("promoted", promoted).Msg("reminders promoted to active")
	}
}
