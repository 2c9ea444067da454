//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voyages_get_test
package voyages_get

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
	GetVoyages(ctx context.Context) ([]entities.VoyageDetails, error)
}
