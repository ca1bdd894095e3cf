package testutil

import (
	"context"
	"mime/multipart"

	"github.com/harulog/haru-diary/go-api-server/internal/shared/upload"
)

// MockStorage is a mock implementation of upload.Storage for testing
type MockStorage struct {
	SaveFunc func(ctx context.Context, file *multipart.FileHeader) (string, error)
}

func (m *MockStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, file)
	}
	return "uploads/mock-photo.jpg", nil
}

// Ensure MockStorage implements upload.Storage
var _ upload.Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage with default behavior
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}
