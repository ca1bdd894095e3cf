package upload

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/harulog/haru-diary/go-api-server/internal/config"
)

// Storage persists uploaded files and returns the path stored in
// post_photo. Handlers never care which driver is behind it.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// New selects the storage driver from configuration.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Upload.Driver {
	case "local", "":
		return NewLocalStorage(cfg.Upload.LocalDir, cfg.Upload.BaseURL)
	case "s3":
		return NewS3Storage(ctx, cfg.Upload)
	default:
		return nil, fmt.Errorf("upload: 지원하지 않는 storage driver: %s", cfg.Upload.Driver)
	}
}
