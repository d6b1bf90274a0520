package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain"
)

// LocalStorage keeps uploads on disk; gin serves them under urlPrefix.
type LocalStorage struct {
	dir       string
	urlPrefix string
	logger    *zap.Logger
}

func NewLocalStorage(dir, urlPrefix string, logger *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de archivos: %w", err)
	}
	return &LocalStorage{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		logger:    logger,
	}, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) UploadFile(ctx context.Context, data []byte, filename, _ string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("archivo vacío: %w", domain.ErrInvalidFile)
	}

	name := filepath.Base(filename)
	if name == "." || name == "/" {
		return "", fmt.Errorf("nombre de archivo inválido: %w", domain.ErrInvalidFile)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("error al guardar el archivo: %w", err)
	}

	s.logger.Debug("archivo guardado", zap.String("file", name), zap.Int("size", len(data)))

	return path.Join(s.urlPrefix, name), nil
}

func (s *LocalStorage) DeleteFile(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	if !strings.HasPrefix(fileURL, s.urlPrefix+"/") {
		return fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}

	name := strings.TrimPrefix(fileURL, s.urlPrefix+"/")
	if name == "" || name == ".." || name != filepath.Base(name) {
		return fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("error al eliminar el archivo: %w", err)
	}

	return nil
}
