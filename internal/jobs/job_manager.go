package jobs

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	ordersGaugeJob *OrdersGaugeJob
}

func NewJobManager(
	counter orderCounter,
	gauge *prometheus.GaugeVec,
	ordersGaugeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ordersGaugeJob: NewOrdersGaugeJob(counter, gauge, ordersGaugeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.ordersGaugeJob.Start(); err != nil {
		return fmt.Errorf("failed to start orders gauge job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.ordersGaugeJob.Stop()
}
