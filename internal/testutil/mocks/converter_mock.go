package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/pgn2json/internal/models"
)

// MockConverter is a mock implementation of worker.ConverterInterface
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, text string) (models.Conversion, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(models.Conversion), args.Error(1)
}
