package testutil

import (
	"testing"

	"github.com/nhle/projectflow/internal/apiserver"
)

// NewTestStore creates an in-memory document store with the schema applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *apiserver.Store {
	t.Helper()

	s, err := apiserver.OpenStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
