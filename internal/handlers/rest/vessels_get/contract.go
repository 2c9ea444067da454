//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vessels_get_test
package vessels_get

import (
	"context"

	"voyage/internal/entities"
	"voyage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetVessels(ctx context.Context) ([]entities.Vessel, error)
}
