package jobs

import (
	"context"
	"log/slog"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultOrdersGaugeSchedule refreshes the gauge every 30 seconds.
const DefaultOrdersGaugeSchedule = "*/30 * * * * *"

type orderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

// OrdersGaugeJob periodically copies per-status order counts into a gauge.
type OrdersGaugeJob struct {
	counter  orderCounter
	gauge    *prometheus.GaugeVec
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrdersGaugeJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule means DefaultOrdersGaugeSchedule.
func NewOrdersGaugeJob(counter orderCounter, gauge *prometheus.GaugeVec, schedule string, logger *slog.Logger) *OrdersGaugeJob {
	if schedule == "" {
		schedule = DefaultOrdersGaugeSchedule
	}
	return &OrdersGaugeJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "orders_gauge_job"),
	}
}

// Refresh runs one update. On error the gauge keeps its previous values.
func (j *OrdersGaugeJob) Refresh(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return err
	}

	for status, count := range counts {
		j.gauge.WithLabelValues(status.String()).Set(float64(count))
	}
	return nil
}

// Start refreshes once right away and then on every schedule tick.
func (j *OrdersGaugeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Orders gauge refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err = j.Refresh(ctx); err != nil {
		j.logger.WarnContext(ctx, "Initial orders gauge refresh failed", "error", err)
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Orders gauge job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *OrdersGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Orders gauge job stopped")
}
