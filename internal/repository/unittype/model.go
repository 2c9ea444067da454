package unittype

type UnitTypeDB struct {
	ID   string
	Name string
}
