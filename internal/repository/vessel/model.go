package vessel

type VesselDB struct {
	ID   string
	Name string
}
