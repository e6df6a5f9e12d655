package mocks

import (
	"context"

	"GO-dungeon/internal/game"

	"github.com/stretchr/testify/mock"
)

// MockModel is a mock type for the game.Model type
type MockModel struct {
	mock.Mock
}

// StartChat provides a mock function with given fields: ctx, seed
func (_m *MockModel) StartChat(ctx context.Context, seed []game.Message) (game.Chat, error) {
	ret := _m.Called(ctx, seed)

	var r0 game.Chat
	if rf, ok := ret.Get(0).(func(context.Context, []game.Message) game.Chat); ok {
		r0 = rf(ctx, seed)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(game.Chat)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []game.Message) error); ok {
		r1 = rf(ctx, seed)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockModel creates a new instance of MockModel. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockModel(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModel {
	m := &MockModel{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockChat is a mock type for the game.Chat type
type MockChat struct {
	mock.Mock
}

// SendMessage provides a mock function with given fields: ctx, text
func (_m *MockChat) SendMessage(ctx context.Context, text string) (string, error) {
	ret := _m.Called(ctx, text)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, text)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, text)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockChat creates a new instance of MockChat.
func NewMockChat(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChat {
	m := &MockChat{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var (
	_ game.Model = (*MockModel)(nil)
	_ game.Chat  = (*MockChat)(nil)
)
