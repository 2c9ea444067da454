package unittypes_get

import (
	"encoding/json"
	"net/http"

	"voyage/internal/generated/dto"
	"voyage/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unitTypeEntities, err := h.service.GetUnitTypes(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	unitTypeDTOs := make([]dto.UnitType, len(unitTypeEntities))
	for i, unitType := range unitTypeEntities {
		unitTypeDTOs[i].Id = unitType.ID
		unitTypeDTOs[i].Name = unitType.Name
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(unitTypeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
