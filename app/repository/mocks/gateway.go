package mocks

import (
	"context"

	"achievement-portal/app/gateway"

	"github.com/stretchr/testify/mock"
)

type MockQueryGateway struct {
	mock.Mock
}

func (m *MockQueryGateway) Select(ctx context.Context, table string, opts ...gateway.QueryOption) ([]gateway.Row, error) {
	args := m.Called(ctx, table, opts)
	if rows := args.Get(0); rows != nil {
		return rows.([]gateway.Row), args.Error(1)
	}
	return nil, args.Error(1)
}
