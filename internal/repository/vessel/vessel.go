package vessel

import (
	"context"
	"fmt"

	"voyage/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Vessel, error) {
	query := `
	SELECT id, name
	FROM vessels
	ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vessel repository getall error: %w", err)
	}
	defer rows.Close()

	vesselModels := make([]VesselDB, 0, 8)
	for rows.Next() {
		var vesselModel VesselDB
		err := rows.Scan(&vesselModel.ID, &vesselModel.Name)
		if err != nil {
			return nil, fmt.Errorf("unexpected vessel repository getall error: %w", err)
		}
		vesselModels = append(vesselModels, vesselModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vessel repository getall error: %w", err)
	}

	return ToDomainList(vesselModels), nil
}
