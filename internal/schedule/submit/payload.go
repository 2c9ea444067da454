package submit

import (
	"time"

	"voyage/internal/schedule/form"
)

// Payload - проводное тело запроса создания рейса. Живет от сборки до
// единственного HTTP вызова и дальше не переиспользуется.
type Payload struct {
	PortOfLoading      string   `json:"portOfLoading"`
	PortOfDischarge    string   `json:"portOfDischarge"`
	VesselID           string   `json:"vesselId"`
	ScheduledDeparture string   `json:"scheduledDeparture"`
	ScheduledArrival   string   `json:"scheduledArrival"`
	UnitTypes          []string `json:"unitTypes"`
}

// buildPayload сериализует прошедший валидацию черновик один в один,
// даты в ISO-8601, порядок типов юнитов сохраняется.
func buildPayload(draft form.Draft) Payload {
	return Payload{
		PortOfLoading:      draft.PortOfLoading,
		PortOfDischarge:    draft.PortOfDischarge,
		VesselID:           draft.VesselID,
		ScheduledDeparture: draft.ScheduledDeparture.Format(time.RFC3339),
		ScheduledArrival:   draft.ScheduledArrival.Format(time.RFC3339),
		UnitTypes:          append([]string{}, draft.UnitTypeIDs...),
	}
}
