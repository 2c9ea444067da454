//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voyage_put_test
package voyage_put

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
	CreateVoyage(ctx context.Context, voyageModify entities.VoyageModify) (*entities.Voyage, error)
}
