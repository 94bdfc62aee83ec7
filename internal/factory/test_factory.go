package factory

import (
	"context"
	"time"

	"github.com/mcoot/gameportal/internal/dependencies/mocks"
	"github.com/mcoot/gameportal/internal/services/directory"
	"github.com/mcoot/gameportal/internal/storage"
	"github.com/mcoot/gameportal/internal/storage/memory"
	"github.com/mcoot/gameportal/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
// over a fresh in-memory store
func NewTestApp() *TestApp {
	return NewTestAppWithStore(memory.New())
}

// NewTestAppWithStore builds a test app over an existing store, which is how
// tests simulate a restart against persisted data
func NewTestAppWithStore(store storage.Store) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs("id")

	app := newWithDependencies(context.Background(), store, mockClock, mockRandom, mockIDs, directory.Plaintext{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}
