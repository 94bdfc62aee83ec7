package mocks

import (
	"fmt"

	"github.com/mcoot/gameportal/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	Prefix string
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs issuing prefix-1, prefix-2, ...
func NewMockIDs(prefix string) *MockIDs {
	return &MockIDs{Prefix: prefix}
}

// NewID returns the next sequential id
func (g *MockIDs) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}
