package entity

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a 32-character hex identifier for new rows.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
