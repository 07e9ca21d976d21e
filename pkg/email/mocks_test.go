package email_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/snippets/pkg/email"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
