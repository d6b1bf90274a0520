package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/domain"
)

const s3ObjectPrefix = "uploads/"

type S3Storage struct {
	client  *minio.Client
	cfg     config.S3Config
	baseURL string
	logger  *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error al inicializar el cliente S3: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error al verificar el bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{
			Region: cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("error al crear el bucket: %w", err)
		}
	}

	return &S3Storage{
		client:  client,
		cfg:     cfg,
		baseURL: s3BaseURL(cfg),
		logger:  logger,
	}, nil
}

// s3BaseURL is the public prefix of stored objects, without trailing slash.
func s3BaseURL(cfg config.S3Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (s *S3Storage) UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("archivo vacío: %w", domain.ErrInvalidFile)
	}

	objectName := s3ObjectPrefix + filename
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("error al subir el archivo a S3: %w", err)
	}

	s.logger.Debug("archivo subido a S3", zap.String("object", objectName))

	return s.baseURL + "/" + objectName, nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	objectName, err := objectNameFromURL(s.baseURL, fileURL)
	if err != nil {
		return err
	}

	err = s.client.RemoveObject(ctx, s.cfg.Bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return domain.ErrNotFound
		}
		return fmt.Errorf("error al eliminar el archivo de S3: %w", err)
	}

	return nil
}

func objectNameFromURL(baseURL, fileURL string) (string, error) {
	if !strings.HasPrefix(fileURL, baseURL+"/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}
	objectName := strings.TrimPrefix(fileURL, baseURL+"/")
	if !strings.HasPrefix(objectName, s3ObjectPrefix) || strings.Contains(objectName, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}
	return objectName, nil
}
