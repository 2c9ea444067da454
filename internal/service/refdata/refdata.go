package refdata

import (
	"context"
	"fmt"

	"voyage/internal/entities"
)

// RefData отдает справочники судов и типов юнитов для формы создания рейса.
type RefData struct {
	vesselRepository   VesselRepository
	unitTypeRepository UnitTypeRepository
}

func New(
	vesselRepository VesselRepository,
	unitTypeRepository UnitTypeRepository,
) *RefData {
	return &RefData{
		vesselRepository:   vesselRepository,
		unitTypeRepository: unitTypeRepository,
	}
}

func (r *RefData) GetVessels(ctx context.Context) ([]entities.Vessel, error) {
	vessels, err := r.vesselRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get vessels: %w", err)
	}

	return vessels, nil
}

func (r *RefData) GetUnitTypes(ctx context.Context) ([]entities.UnitType, error) {
	unitTypes, err := r.unitTypeRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get unit types: %w", err)
	}

	return unitTypes, nil
}
