package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/pgn2json/internal/replay"
)

// MockReplayer is a mock implementation of replay.Replayer
type MockReplayer struct {
	mock.Mock
}

func (m *MockReplayer) Replay(ctx context.Context, moves []string) (replay.Result, error) {
	args := m.Called(ctx, moves)
	return args.Get(0).(replay.Result), args.Error(1)
}
