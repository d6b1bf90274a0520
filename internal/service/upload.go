package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/metrics"
	"barbershop/internal/storage"
)

type UploadServiceImpl struct {
	storage storage.FileStorage
	maxSize int64
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewUploadService(fs storage.FileStorage, maxSize int64, m *metrics.Metrics, logger *zap.Logger) *UploadServiceImpl {
	if maxSize <= 0 {
		maxSize = 5 << 20
	}
	return &UploadServiceImpl{
		storage: fs,
		maxSize: maxSize,
		metrics: m,
		logger:  logger,
	}
}

func (s *UploadServiceImpl) MaxSize() int64 {
	return s.maxSize
}

func (s *UploadServiceImpl) Upload(ctx context.Context, data []byte, originalName string) (*domain.UploadResult, error) {
	if int64(len(data)) > s.maxSize {
		s.metrics.UploadResult("rejected", len(data))
		return nil, domain.ErrFileTooLarge
	}

	contentType, ext, err := storage.DetectImage(data, originalName)
	if err != nil {
		s.metrics.UploadResult("rejected", len(data))
		s.logger.Info("archivo rechazado", zap.String("name", originalName), zap.Error(err))
		return nil, err
	}

	name := storage.GenerateName(ext)
	url, err := s.storage.UploadFile(ctx, data, name, contentType)
	if err != nil {
		s.metrics.UploadResult("failed", len(data))
		s.logger.Error("error al guardar el archivo", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("error al guardar el archivo: %w", err)
	}

	s.metrics.UploadResult("stored", len(data))
	s.logger.Info("archivo subido", zap.String("url", url), zap.Int("size", len(data)))

	return &domain.UploadResult{
		URL:          url,
		Filename:     name,
		OriginalName: filepath.Base(originalName),
		Size:         int64(len(data)),
		ContentType:  contentType,
	}, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return domain.NewValidationError("url", "la URL es obligatoria")
	}

	err := s.storage.DeleteFile(ctx, fileURL)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidURL) {
			return domain.NewValidationError("url", "URL de archivo inválida")
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al eliminar el archivo", zap.String("url", fileURL), zap.Error(err))
		}
		return err
	}
	return nil
}
