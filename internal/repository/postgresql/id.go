package postgresql

import (
	"fmt"

	"github.com/google/uuid"
)

// newID returns a time-ordered UUIDv7 string for primary keys.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
