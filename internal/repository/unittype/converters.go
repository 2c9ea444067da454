package unittype

import "voyage/internal/entities"

func ToDomain(ut *UnitTypeDB) *entities.UnitType {
	if ut == nil {
		return nil
	}

	return &entities.UnitType{
		ID:   ut.ID,
		Name: ut.Name,
	}
}

func ToDomainList(models []UnitTypeDB) []entities.UnitType {
	result := make([]entities.UnitType, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}
