package entities

// Vessel и UnitType - справочные данные, на которые ссылается рейс.
// Идентификаторы непрозрачные строки, выдает их хранилище.

type Vessel struct {
	ID   string
	Name string
}

type UnitType struct {
	ID   string
	Name string
}
