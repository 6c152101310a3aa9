package domain

import (
	"fmt"
)

var ErrEntityNotFound *notFoundError

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id fmt.Stringer) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id.String(),
	}
}

func (e *notFoundError) Is(target error) bool {
	_, ok := target.(*notFoundError)
	return ok
}
