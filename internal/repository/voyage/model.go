package voyage

import "time"

type VoyageDB struct {
	ID                 string
	PortOfLoading      string
	PortOfDischarge    string
	VesselID           string
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	CreatedAt          time.Time
}

type VoyageModifyDB struct {
	PortOfLoading      *string
	PortOfDischarge    *string
	VesselID           *string
	ScheduledDeparture *time.Time
	ScheduledArrival   *time.Time
}

// voyageDetailsRowDB - одна строка выборки списка рейсов: рейс, судно и
// один тип юнита (nullable из-за LEFT JOIN).
type voyageDetailsRowDB struct {
	VoyageDB
	VesselName   string
	UnitTypeID   *string
	UnitTypeName *string
}
