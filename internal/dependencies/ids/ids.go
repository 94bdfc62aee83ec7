package ids

import "github.com/google/uuid"

// Generator produces unique identifiers that can be mocked for testing
type Generator interface {
	NewID() string
}

// UUIDGenerator issues version 7 UUIDs, which embed the creation time in
// milliseconds and sort in creation order
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh time-ordered UUID string
func (g *UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the system random source fails
		return uuid.NewString()
	}
	return id.String()
}
