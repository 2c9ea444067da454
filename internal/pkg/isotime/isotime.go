package isotime

import (
	"time"
)

// Клиенты присылают ISO-8601 в нескольких вариантах (с зоной, без зоны,
// с миллисекундами), поэтому парсим по списку раскладок.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05-07:00",
}

func Parse(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
