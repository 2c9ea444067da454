package form

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"voyage/internal/entities"
	"voyage/internal/schedule/daterange"
)

// Model держит текущий черновик рейса, справочники и пофилевые ошибки
// валидации. Справочники заменяются только целиком, выбор id вне
// последней успешной загрузки отклоняется. Не потокобезопасен, живет
// в одной событийной горутине формы.
type Model struct {
	validate   *validator.Validate
	translator ut.Translator

	vessels   map[string]entities.Vessel
	unitTypes map[string]entities.UnitType
	loaded    bool

	draft       Draft
	fieldErrors map[string]string
}

func NewModel() (*Model, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// в ошибках валидации поля называются как на проводе
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Model{
		validate:    validate,
		translator:  translator,
		fieldErrors: map[string]string{},
	}, nil
}

// Ready сообщает, загружены ли справочники. До загрузки форма не
// принимает выбор и не может быть отправлена.
func (m *Model) Ready() bool {
	return m.loaded
}

// SetReferenceData заменяет оба справочника целиком. Выбранные ранее id,
// выпавшие из новой выборки, сбрасываются, чтобы черновик не ссылался
// в никуда.
func (m *Model) SetReferenceData(vessels []entities.Vessel, unitTypes []entities.UnitType) {
	m.vessels = make(map[string]entities.Vessel, len(vessels))
	for _, vessel := range vessels {
		m.vessels[vessel.ID] = vessel
	}

	m.unitTypes = make(map[string]entities.UnitType, len(unitTypes))
	for _, unitType := range unitTypes {
		m.unitTypes[unitType.ID] = unitType
	}

	m.loaded = true

	if _, ok := m.vessels[m.draft.VesselID]; !ok {
		m.draft.VesselID = ""
	}
	kept := m.draft.UnitTypeIDs[:0]
	for _, id := range m.draft.UnitTypeIDs {
		if _, ok := m.unitTypes[id]; ok {
			kept = append(kept, id)
		}
	}
	m.draft.UnitTypeIDs = kept
}

// SetDateRange принимает согласованную пару из селектора диапазона.
func (m *Model) SetDateRange(value daterange.Range) {
	from := value.From
	to := value.To
	m.draft.ScheduledDeparture = &from
	m.draft.ScheduledArrival = &to
}

func (m *Model) SelectPortOfLoading(port string) {
	m.draft.PortOfLoading = port
}

func (m *Model) SelectPortOfDischarge(port string) {
	m.draft.PortOfDischarge = port
}

func (m *Model) SelectVessel(id string) error {
	if !m.loaded {
		return ErrReferenceDataNotLoaded
	}
	if _, ok := m.vessels[id]; !ok {
		return ErrUnknownVessel
	}

	m.draft.VesselID = id
	return nil
}

func (m *Model) SelectUnitTypes(ids []string) error {
	if !m.loaded {
		return ErrReferenceDataNotLoaded
	}
	for _, id := range ids {
		if _, ok := m.unitTypes[id]; !ok {
			return ErrUnknownUnitType
		}
	}

	m.draft.UnitTypeIDs = append([]string{}, ids...)
	return nil
}

// Validate прогоняет две фазы: сначала схему черновика, затем, только
// если схема прошла, кросс-проверку портов. Ошибки привязываются к
// конкретным полям и блокируют отправку.
func (m *Model) Validate() bool {
	if !m.loaded {
		return false
	}

	m.fieldErrors = map[string]string{}

	err := m.validate.Struct(m.draft)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				m.fieldErrors[fieldError.Field()] = fieldError.Translate(m.translator)
			}
			return false
		}

		m.fieldErrors["draft"] = err.Error()
		return false
	}

	if m.draft.PortOfLoading == m.draft.PortOfDischarge {
		m.fieldErrors["portOfDischarge"] = "port of discharge must differ from port of loading"
		return false
	}

	return true
}

// FieldErrors возвращает ошибки последнего Validate по json имени поля.
func (m *Model) FieldErrors() map[string]string {
	return m.fieldErrors
}

// Draft возвращает снимок текущего черновика.
func (m *Model) Draft() Draft {
	snapshot := m.draft
	snapshot.UnitTypeIDs = append([]string{}, m.draft.UnitTypeIDs...)
	return snapshot
}

// Reset возвращает черновик к состоянию свежеоткрытой формы. Справочники
// не трогаются, перезагружать их при каждом открытии не нужно.
func (m *Model) Reset(now time.Time) {
	defaultRange := daterange.DefaultRange(now)

	m.draft = Draft{}
	m.SetDateRange(defaultRange)
	m.fieldErrors = map[string]string{}
}
