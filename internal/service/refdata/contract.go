//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=refdata_test
package refdata

import (
	"context"

	"voyage/internal/entities"
)

type VesselRepository interface {
	GetAll(ctx context.Context) ([]entities.Vessel, error)
}

type UnitTypeRepository interface {
	GetAll(ctx context.Context) ([]entities.UnitType, error)
}
