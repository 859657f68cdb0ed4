package mocks

import (
	"context"
	"fmt"

	"github.com/GioNegri/PedagogIA2/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows customizing the Generate behavior
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Result, error)

	// GenerateError is returned by the default implementation when set
	GenerateError error
}

// NewMockGenerator creates a new mock generator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Ensure MockGenerator implements generation.Generator
var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the Generator interface. The default implementation
// returns a deterministic result derived from the request.
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}

	if m.GenerateError != nil {
		return nil, m.GenerateError
	}

	return &generation.Result{
		Title: fmt.Sprintf("Generated %s", req.Kind),
		Body:  fmt.Sprintf("mock content for kind %q topic %q", req.Kind, req.Topic),
	}, nil
}
