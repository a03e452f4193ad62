// Package jobs provides scheduled background tasks for the back-office service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules.
//
// # Available Jobs
//
// OrdersGaugeJob counts orders per status and publishes the numbers through
// the orders_by_status gauge. The schedule comes from METRICS_REFRESH_SCHEDULE
// and defaults to every 30 seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, metrics.OrdersByStatus, cfg.MetricsRefreshSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the gauge keeps its last values. An invalid
// schedule makes StartAll fail.
package jobs
