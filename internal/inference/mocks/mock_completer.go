package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, model, prompt, maxTokens)
	return args.String(0), args.Error(1)
}
