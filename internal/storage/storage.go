package storage

import (
	"context"
	"errors"
)

var ErrInvalidURL = errors.New("URL de archivo inválida")

// FileStorage stores uploaded images and returns their public URL.
type FileStorage interface {
	UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error
}
