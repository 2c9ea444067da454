package schedule_metrics

import (
	"context"
	"time"

	"voyage/pkg/logger"
)

type Service interface {
	RefreshUpcomingDepartures(ctx context.Context) (int64, error)
}

// ScheduleMetrics периодически пересчитывает гейдж предстоящих
// отправлений, чтобы метрика не зависела только от событий voyage.created.
type ScheduleMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewScheduleMetrics(log logger.Logger, service Service, interval time.Duration) *ScheduleMetrics {
	return &ScheduleMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ScheduleMetrics) TTL() time.Duration {
	return s.interval
}

func (s *ScheduleMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	count, err := s.service.RefreshUpcomingDepartures(ctxWithTimeout)
	if err == nil {
		s.log.With(
			logger.NewField("upcoming", count),
		).Info("schedule metrics refresh")
	}

	return err
}

func (s *ScheduleMetrics) Info() string {
	return "schedule metrics refresh"
}
