package mocks

import (
	"context"

	"GO-dungeon/internal/game"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock type for the game.Recorder type
type MockRecorder struct {
	mock.Mock
}

// Record provides a mock function with given fields: ctx, entries
func (_m *MockRecorder) Record(ctx context.Context, entries []game.Entry) error {
	ret := _m.Called(ctx, entries)

	if rf, ok := ret.Get(0).(func(context.Context, []game.Entry) error); ok {
		return rf(ctx, entries)
	}
	return ret.Error(0)
}

// NewMockRecorder creates a new instance of MockRecorder.
func NewMockRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecorder {
	m := &MockRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ game.Recorder = (*MockRecorder)(nil)
