package vessel

import "voyage/internal/entities"

func ToDomain(v *VesselDB) *entities.Vessel {
	if v == nil {
		return nil
	}

	return &entities.Vessel{
		ID:   v.ID,
		Name: v.Name,
	}
}

func ToDomainList(models []VesselDB) []entities.Vessel {
	result := make([]entities.Vessel, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}
