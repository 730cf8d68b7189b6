package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Notifier is a mock of model.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) SendInvitation(ctx context.Context, email, firstName string, userID uuid.UUID) error {
	args := m.Called(ctx, email, firstName, userID)
	return args.Error(0)
}

func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
