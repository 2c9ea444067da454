package voyage

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"voyage/internal/entities"
	"voyage/internal/repository"
	"voyage/internal/service/voyage"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, voyageModifyEntity entities.VoyageModify) (*entities.Voyage, error) {
	voyageModifyModel := FromDomainModify(&voyageModifyEntity)
	query := `INSERT INTO voyages (port_of_loading, port_of_discharge, vessel_id, scheduled_departure, scheduled_arrival)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, port_of_loading, port_of_discharge, vessel_id, scheduled_departure, scheduled_arrival, created_at`

	var voyageModel VoyageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		voyageModifyModel.PortOfLoading,
		voyageModifyModel.PortOfDischarge,
		voyageModifyModel.VesselID,
		voyageModifyModel.ScheduledDeparture,
		voyageModifyModel.ScheduledArrival,
	).Scan(
		&voyageModel.ID,
		&voyageModel.PortOfLoading,
		&voyageModel.PortOfDischarge,
		&voyageModel.VesselID,
		&voyageModel.ScheduledDeparture,
		&voyageModel.ScheduledArrival,
		&voyageModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, voyage.ErrUnknownVessel
		}
		return nil, fmt.Errorf("unexpected voyage repository create error: %w", err)
	}

	return ToDomain(&voyageModel), nil
}

// ConnectUnitTypes связывает рейс с типами юнитов. Вызывается в одной
// транзакции с Create: висячий id нарушает FK и откатывает создание целиком.
func (r *Repository) ConnectUnitTypes(ctx context.Context, voyageID string, unitTypeIDs []string) error {
	if len(unitTypeIDs) == 0 {
		return nil
	}

	builder := qb.
		Insert("voyage_unit_types").
		Columns("voyage_id", "unit_type_id")
	for _, unitTypeID := range unitTypeIDs {
		builder = builder.Values(voyageID, unitTypeID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected voyage repository connect error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) &&
			strings.Contains(repository.PgErrorConstraint(err), "unit_type") {
			return voyage.ErrUnknownUnitType
		}
		return fmt.Errorf("unexpected voyage repository connect error: %w", err)
	}

	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.VoyageDetails, error) {
	query := `
	SELECT v.id, v.port_of_loading, v.port_of_discharge, v.vessel_id,
	       v.scheduled_departure, v.scheduled_arrival, v.created_at,
	       s.name,
	       ut.id, ut.name
	FROM voyages v
	JOIN vessels s ON s.id = v.vessel_id
	LEFT JOIN voyage_unit_types vut ON vut.voyage_id = v.id
	LEFT JOIN unit_types ut ON ut.id = vut.unit_type_id
	ORDER BY v.scheduled_departure, v.id, ut.name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected voyage repository getall error: %w", err)
	}
	defer rows.Close()

	rowModels := make([]voyageDetailsRowDB, 0, 8)
	for rows.Next() {
		var rowModel voyageDetailsRowDB
		err := rows.Scan(
			&rowModel.ID,
			&rowModel.PortOfLoading,
			&rowModel.PortOfDischarge,
			&rowModel.VesselID,
			&rowModel.ScheduledDeparture,
			&rowModel.ScheduledArrival,
			&rowModel.CreatedAt,
			&rowModel.VesselName,
			&rowModel.UnitTypeID,
			&rowModel.UnitTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected voyage repository getall error: %w", err)
		}
		rowModels = append(rowModels, rowModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected voyage repository getall error: %w", err)
	}

	return toDetailsList(rowModels), nil
}

func (r *Repository) CountUpcoming(ctx context.Context, after time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM voyages WHERE scheduled_departure >= $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, after).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected voyage repository count error: %w", err)
	}

	return count, nil
}
