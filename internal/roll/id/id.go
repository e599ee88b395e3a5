// Package id generates time-sortable roll identifiers.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces UUIDv7 roll identifiers. UUIDv7 values sort by creation
// time and are collision-resistant across uncoordinated generators, which
// lets storage adapters use the identifier as a natural index key.
type Generator struct{}

// NewID returns a fresh UUIDv7 string.
func (Generator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate roll id: %w", err)
	}
	return value.String(), nil
}
