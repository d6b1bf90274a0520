package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/metrics"
)

var testPNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestUploadImage(t *testing.T) {
	fs := newFakeStorage()
	svc := NewUploadService(fs, 1<<20, nil, zap.NewNop())

	res, err := svc.Upload(context.Background(), testPNG, "../../fotos/corte.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(res.Filename, ".png"))
	assert.Equal(t, "corte.png", res.OriginalName)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, int64(len(testPNG)), res.Size)
	assert.Contains(t, fs.files, res.URL)

	require.NoError(t, svc.Delete(context.Background(), res.URL))
	assert.ErrorIs(t, svc.Delete(context.Background(), res.URL), domain.ErrNotFound)
}

func TestUploadRejections(t *testing.T) {
	svc := NewUploadService(newFakeStorage(), 16, nil, zap.NewNop())

	_, err := svc.Upload(context.Background(), testPNG, "a.png")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	svc = NewUploadService(newFakeStorage(), 0, nil, zap.NewNop())
	assert.Equal(t, int64(5<<20), svc.MaxSize())

	_, err = svc.Upload(context.Background(), []byte("MZ\x90\x00binary"), "a.png")
	assert.ErrorIs(t, err, domain.ErrInvalidFile)

	_, err = svc.Upload(context.Background(), testPNG, "a.svg")
	assert.ErrorIs(t, err, domain.ErrInvalidFile)

	assert.True(t, domain.IsValidationError(svc.Delete(context.Background(), "")))
}

func TestUploadStorageFailure(t *testing.T) {
	fs := newFakeStorage()
	fs.uploadErr = errors.New("disk full")
	svc := NewUploadService(fs, 1<<20, nil, zap.NewNop())

	_, err := svc.Upload(context.Background(), testPNG, "a.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidFile)
}

func TestUploadMetrics(t *testing.T) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	fs := newFakeStorage()
	svc := NewUploadService(fs, 1<<20, m, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Upload(ctx, testPNG, "foto.jpg")
	require.NoError(t, err)
	_, err = svc.Upload(ctx, []byte("hola"), "a.png")
	require.Error(t, err)

	fs.uploadErr = errors.New("disk full")
	_, err = svc.Upload(ctx, testPNG, "a.png")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues("stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(len(testPNG)), testutil.ToFloat64(m.UploadedBytes))
}

func TestUploadStoresUnderSniffedExtension(t *testing.T) {
	svc := NewUploadService(newFakeStorage(), 1<<20, nil, zap.NewNop())

	res, err := svc.Upload(context.Background(), testPNG, "corte.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Filename, ".png"), res.Filename)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, "corte.jpg", res.OriginalName)
}
