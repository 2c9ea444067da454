package voyageapi

import (
	"fmt"

	"voyage/internal/entities"
	"voyage/internal/generated/dto"
	"voyage/internal/pkg/isotime"
)

func toVesselList(models []dto.Vessel) []entities.Vessel {
	result := make([]entities.Vessel, 0, len(models))
	for _, model := range models {
		result = append(result, entities.Vessel{
			ID:   model.Id,
			Name: model.Name,
		})
	}
	return result
}

func toUnitTypeList(models []dto.UnitType) []entities.UnitType {
	result := make([]entities.UnitType, 0, len(models))
	for _, model := range models {
		result = append(result, entities.UnitType{
			ID:   model.Id,
			Name: model.Name,
		})
	}
	return result
}

func toVoyageDetailsList(models []dto.Voyage) ([]entities.VoyageDetails, error) {
	result := make([]entities.VoyageDetails, 0, len(models))

	for _, model := range models {
		departure, err := isotime.Parse(model.ScheduledDeparture)
		if err != nil {
			return nil, fmt.Errorf("parse scheduled departure of %s: %w", model.Id, err)
		}
		arrival, err := isotime.Parse(model.ScheduledArrival)
		if err != nil {
			return nil, fmt.Errorf("parse scheduled arrival of %s: %w", model.Id, err)
		}

		result = append(result, entities.VoyageDetails{
			Voyage: entities.Voyage{
				ID:                 model.Id,
				PortOfLoading:      entities.PortCode(model.PortOfLoading),
				PortOfDischarge:    entities.PortCode(model.PortOfDischarge),
				VesselID:           model.VesselId,
				ScheduledDeparture: departure,
				ScheduledArrival:   arrival,
			},
			Vessel: entities.Vessel{
				ID:   model.Vessel.Id,
				Name: model.Vessel.Name,
			},
			UnitTypes: toUnitTypeList(model.UnitTypes),
		})
	}

	return result, nil
}
