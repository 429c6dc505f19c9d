package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Generate(ctx context.Context, movie, year string) (string, error) {
	args := m.Called(ctx, movie, year)
	return args.String(0), args.Error(1)
}
