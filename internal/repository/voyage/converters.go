package voyage

import (
	"voyage/internal/entities"
)

func ToDomain(v *VoyageDB) *entities.Voyage {
	if v == nil {
		return nil
	}

	return &entities.Voyage{
		ID:                 v.ID,
		PortOfLoading:      entities.PortCode(v.PortOfLoading),
		PortOfDischarge:    entities.PortCode(v.PortOfDischarge),
		VesselID:           v.VesselID,
		ScheduledDeparture: v.ScheduledDeparture,
		ScheduledArrival:   v.ScheduledArrival,
		CreatedAt:          v.CreatedAt,
	}
}

func FromDomainModify(voyageModify *entities.VoyageModify) *VoyageModifyDB {
	if voyageModify == nil {
		return nil
	}
	voyageDB := &VoyageModifyDB{}

	if voyageModify.PortOfLoading != nil {
		port := voyageModify.PortOfLoading.String()
		voyageDB.PortOfLoading = &port
	}
	if voyageModify.PortOfDischarge != nil {
		port := voyageModify.PortOfDischarge.String()
		voyageDB.PortOfDischarge = &port
	}
	if voyageModify.VesselID != nil {
		voyageDB.VesselID = voyageModify.VesselID
	}
	if voyageModify.ScheduledDeparture != nil {
		voyageDB.ScheduledDeparture = voyageModify.ScheduledDeparture
	}
	if voyageModify.ScheduledArrival != nil {
		voyageDB.ScheduledArrival = voyageModify.ScheduledArrival
	}

	return voyageDB
}

// toDetailsList группирует строки LEFT JOIN выборки по рейсу,
// сохраняя порядок рейсов и порядок типов юнитов из запроса.
func toDetailsList(rows []voyageDetailsRowDB) []entities.VoyageDetails {
	if len(rows) == 0 {
		return []entities.VoyageDetails{}
	}

	result := make([]entities.VoyageDetails, 0, 8)
	index := make(map[string]int, 8)

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			details := entities.VoyageDetails{
				Voyage: *ToDomain(&row.VoyageDB),
				Vessel: entities.Vessel{
					ID:   row.VesselID,
					Name: row.VesselName,
				},
				UnitTypes: []entities.UnitType{},
			}
			result = append(result, details)
			i = len(result) - 1
			index[row.ID] = i
		}

		if row.UnitTypeID != nil && row.UnitTypeName != nil {
			result[i].UnitTypes = append(result[i].UnitTypes, entities.UnitType{
				ID:   *row.UnitTypeID,
				Name: *row.UnitTypeName,
			})
		}
	}

	return result
}
