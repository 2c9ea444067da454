package daterange

import "time"

// defaultRangeSpan - окно по умолчанию между отправлением и прибытием.
const defaultRangeSpan = 18 * time.Hour

// Range - пара таймстемпов рейса. From не обязан предшествовать To,
// порядок проверяет валидация формы, не сама структура.
type Range struct {
	From time.Time
	To   time.Time
}

func DefaultRange(now time.Time) Range {
	return Range{
		From: now,
		To:   now.Add(defaultRangeSpan),
	}
}
