package daterange

import (
	"strconv"
	"strings"
	"time"
)

// TimeOfDay - время суток, разобранное из текстового ввода "HH:MM".
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay разбирает "HH:MM" снисходительно: отсутствующая или
// нечисловая часть превращается в 0, ошибки не возвращаются. Кривой ввод
// деградирует до полуночи, а не ломает дату владельца.
func ParseTimeOfDay(text string) TimeOfDay {
	parts := strings.SplitN(text, ":", 2)

	timeOfDay := TimeOfDay{}
	timeOfDay.Hour = atoiOrZero(parts[0])
	if len(parts) > 1 {
		timeOfDay.Minute = atoiOrZero(parts[1])
	}

	return timeOfDay
}

// Compose собирает новый Timestamp: год/месяц/день берутся из reference,
// час/минута из текста. time.Date нормализует переполнение (25:00 уходит
// на следующий день), секунды обнуляются.
func Compose(reference time.Time, text string) time.Time {
	timeOfDay := ParseTimeOfDay(text)

	return time.Date(
		reference.Year(), reference.Month(), reference.Day(),
		timeOfDay.Hour, timeOfDay.Minute, 0, 0,
		reference.Location(),
	)
}

func atoiOrZero(part string) int {
	value, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0
	}
	return value
}
