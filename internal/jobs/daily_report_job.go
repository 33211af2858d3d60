package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pickuphub/internal/core/application/usecases/queries"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/clock"
)

// DailyReportJob logs warehouse throughput once a day: how many orders were
// registered, marked ready, and picked up during the previous calendar day.
type DailyReportJob struct {
	handler queries.CountOrdersByDayQueryHandler
	cron    *cron.Cron
	clock   clock.Clock
	logger  *slog.Logger
}

// NewDailyReportJob creates the report job. Counts are computed through
// CountOrdersByDayQueryHandler at midnight.
func NewDailyReportJob(
	handler queries.CountOrdersByDayQueryHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *DailyReportJob {
	return &DailyReportJob{
		handler: handler,
		cron:    cron.New(),
		clock:   clk,
		logger:  logger.With("component", "daily_report_job"),
	}
}

// Start schedules the report to run once a day at midnight.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("@daily", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (running at midnight)")
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}

func (j *DailyReportJob) run() {
	ctx := context.Background()
	day := j.clock.Now().AddDate(0, 0, -1)

	counts := make(map[string]int64, 3)
	for _, status := range []order.Status{order.StatusReceived, order.StatusReady, order.StatusPickedUp} {
		query, err := queries.NewCountOrdersByDayQuery(status, day)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily report query construction failed", "error", err)
			return
		}

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "status", status.String(), "error", err)
			return
		}
		counts[status.String()] = count
	}

	j.logger.InfoContext(ctx, "Daily warehouse report",
		"day", day.Format("2006-01-02"),
		"received", counts[order.StatusReceived.String()],
		"ready", counts[order.StatusReady.String()],
		"picked_up", counts[order.StatusPickedUp.String()],
	)
}
