package voyages_get

import (
	"encoding/json"
	"net/http"
	"time"

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
	voyageEntities, err := h.service.GetVoyages(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	voyageDTOs := make([]dto.Voyage, len(voyageEntities))
	for i, details := range voyageEntities {
		unitTypeDTOs := make([]dto.UnitType, len(details.UnitTypes))
		for j, unitType := range details.UnitTypes {
			unitTypeDTOs[j].Id = unitType.ID
			unitTypeDTOs[j].Name = unitType.Name
		}

		voyageDTOs[i] = dto.Voyage{
			Id:                 details.ID,
			PortOfLoading:      details.PortOfLoading.String(),
			PortOfDischarge:    details.PortOfDischarge.String(),
			VesselId:           details.VesselID,
			ScheduledDeparture: details.ScheduledDeparture.Format(time.RFC3339),
			ScheduledArrival:   details.ScheduledArrival.Format(time.RFC3339),
			Vessel: dto.Vessel{
				Id:   details.Vessel.ID,
				Name: details.Vessel.Name,
			},
			UnitTypes: unitTypeDTOs,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(voyageDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
