package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Upload(ctx context.Context, localPath, folder string) (string, error) {
	args := m.Called(ctx, localPath, folder)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
