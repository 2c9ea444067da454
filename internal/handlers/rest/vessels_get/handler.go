package vessels_get

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
	vesselEntities, err := h.service.GetVessels(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	vesselDTOs := make([]dto.Vessel, len(vesselEntities))
	for i, vessel := range vesselEntities {
		vesselDTOs[i].Id = vessel.ID
		vesselDTOs[i].Name = vessel.Name
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vesselDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
