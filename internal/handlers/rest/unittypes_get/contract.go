//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unittypes_get_test
package unittypes_get

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
	GetUnitTypes(ctx context.Context) ([]entities.UnitType, error)
}
