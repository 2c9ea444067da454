package unittype

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

func (r *Repository) GetAll(ctx context.Context) ([]entities.UnitType, error) {
	query := `
	SELECT id, name
	FROM unit_types
	ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected unittype repository getall error: %w", err)
	}
	defer rows.Close()

	unitTypeModels := make([]UnitTypeDB, 0, 8)
	for rows.Next() {
		var unitTypeModel UnitTypeDB
		err := rows.Scan(&unitTypeModel.ID, &unitTypeModel.Name)
		if err != nil {
			return nil, fmt.Errorf("unexpected unittype repository getall error: %w", err)
		}
		unitTypeModels = append(unitTypeModels, unitTypeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected unittype repository getall error: %w", err)
	}

	return ToDomainList(unitTypeModels), nil
}
