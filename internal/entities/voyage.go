package entities

import (
	"time"
)

// PortCode - код порта погрузки/выгрузки. Набор портов фиксированный.
type PortCode string

const (
	PortCopenhagen PortCode = "Copenhagen"
	PortOslo       PortCode = "Oslo"
)

func (p PortCode) String() string {
	return string(p)
}

type Voyage struct {
	ID                 string
	PortOfLoading      PortCode
	PortOfDischarge    PortCode
	VesselID           string
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	CreatedAt          time.Time
}

// VoyageModify - частичное представление рейса для операций записи.
type VoyageModify struct {
	PortOfLoading      *PortCode
	PortOfDischarge    *PortCode
	VesselID           *string
	ScheduledDeparture *time.Time
	ScheduledArrival   *time.Time
	UnitTypeIDs        []string
}

// VoyageDetails - рейс вместе со связанными справочными данными,
// как его отдает список рейсов.
type VoyageDetails struct {
	Voyage
	Vessel    Vessel
	UnitTypes []UnitType
}
