//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voyage_test
package voyage

import (
	"context"
	"time"

	"voyage/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, voyageModify entities.VoyageModify) (*entities.Voyage, error)
	ConnectUnitTypes(ctx context.Context, voyageID string, unitTypeIDs []string) error

	GetAll(ctx context.Context) ([]entities.VoyageDetails, error)
	CountUpcoming(ctx context.Context, after time.Time) (int64, error)
}

type EventPublisher interface {
	VoyageCreated(ctx context.Context, voyageEntity entities.Voyage) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
