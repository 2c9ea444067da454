package daterange

import "time"

type Endpoint string

const (
	EndpointFrom Endpoint = "from"
	EndpointTo   Endpoint = "to"
)

type ChangeFunc func(value Range)

// Selector владеет парой {from, to} и объединяет выбор календарных дней
// с независимым редактированием времени каждой границы. Каждый переход
// публикует наверх ровно одно событие с уже согласованной парой.
// Не потокобезопасен, живет в одной событийной горутине формы.
type Selector struct {
	minDay   time.Time
	current  Range
	onChange ChangeFunc
}

// NewSelector создает селектор с окном по умолчанию от now и публикует
// начальное значение сразу, чтобы форма не видела пустую пару.
func NewSelector(now time.Time, onChange ChangeFunc) *Selector {
	selector := &Selector{
		minDay:   truncateToDay(now),
		current:  DefaultRange(now),
		onChange: onChange,
	}
	selector.emit()

	return selector
}

func (s *Selector) Value() Range {
	return s.current
}

// PickDays заменяет календарные дни обеих границ, сохраняя у каждой ее
// текущее время суток. Дни раньше минимального отклоняются целиком,
// пара не меняется и событие не публикуется.
func (s *Selector) PickDays(from, to time.Time) error {
	if truncateToDay(from).Before(s.minDay) || truncateToDay(to).Before(s.minDay) {
		return ErrPastDay
	}

	s.current.From = combineDay(from, s.current.From)
	s.current.To = combineDay(to, s.current.To)
	s.emit()

	return nil
}

// SetTime заменяет время суток одной границы через Compose, вторая
// граница не трогается.
func (s *Selector) SetTime(endpoint Endpoint, text string) error {
	switch endpoint {
	case EndpointFrom:
		s.current.From = Compose(s.current.From, text)
	case EndpointTo:
		s.current.To = Compose(s.current.To, text)
	default:
		return ErrUnknownEndpoint
	}

	s.emit()
	return nil
}

func (s *Selector) emit() {
	if s.onChange != nil {
		s.onChange(s.current)
	}
}

// combineDay берет календарный день из day и время суток из existing.
func combineDay(day, existing time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		existing.Hour(), existing.Minute(), 0, 0,
		existing.Location(),
	)
}

func truncateToDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}
