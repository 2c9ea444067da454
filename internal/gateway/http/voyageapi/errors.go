package voyageapi

import (
	"fmt"

	"voyage/internal/generated/dto"
)

// StatusError - неуспешный HTTP статус без структурированного тела.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// ValidationError - ответ сервера со списком {path, message} замечаний
// к полям запроса.
type ValidationError struct {
	StatusCode int
	Issues     []dto.ValidationIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with status %d, %d issues", e.StatusCode, len(e.Issues))
}
