package form

import "time"

// Draft - заполняемое состояние формы создания рейса. Теги validate
// описывают схему первой фазы валидации, имена полей в ошибках берутся
// из json тегов.
type Draft struct {
	ScheduledDeparture *time.Time `json:"scheduledDeparture" validate:"required"`
	ScheduledArrival   *time.Time `json:"scheduledArrival"   validate:"required"`
	PortOfLoading      string     `json:"portOfLoading"      validate:"required,oneof=Copenhagen Oslo"`
	PortOfDischarge    string     `json:"portOfDischarge"    validate:"required,oneof=Copenhagen Oslo"`
	VesselID           string     `json:"vesselId"           validate:"required"`
	UnitTypeIDs        []string   `json:"unitTypeIds"        validate:"required,min=5"`
}
