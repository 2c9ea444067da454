package voyage_created

import (
	"context"

	"voyage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RefreshUpcomingDepartures(ctx context.Context) (int64, error)
}
