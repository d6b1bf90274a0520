package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/domain"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func TestDetectImage(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
		wantType string
		wantExt  string
		wantErr  bool
	}{
		{name: "png", data: pngHeader, filename: "foto.PNG", wantType: "image/png", wantExt: ".png"},
		{name: "gif", data: gifHeader, filename: "anim.gif", wantType: "image/gif", wantExt: ".gif"},
		{name: "png named as jpg", data: pngHeader, filename: "foto.jpg", wantType: "image/png", wantExt: ".png"},
		{name: "gif named as jpeg", data: gifHeader, filename: "anim.JPEG", wantType: "image/gif", wantExt: ".gif"},
		{name: "empty", data: nil, filename: "a.png", wantErr: true},
		{name: "bad extension", data: pngHeader, filename: "a.exe", wantErr: true},
		{name: "no extension", data: pngHeader, filename: "a", wantErr: true},
		{name: "text disguised as image", data: []byte("hola mundo"), filename: "a.jpg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, ext, err := DetectImage(tt.data, tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestGenerateName(t *testing.T) {
	a, b := GenerateName(".png"), GenerateName(".png")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
}

func TestLocalStorageUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads/", zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	url, err := s.UploadFile(ctx, pngHeader, "abc.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	require.NoError(t, s.DeleteFile(ctx, url))
	assert.ErrorIs(t, s.DeleteFile(ctx, url), domain.ErrNotFound)
}

func TestLocalStorageRejectsForeignURLs(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads", zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	for _, u := range []string{"/static/a.png", "/uploads/../secret", "/uploads/a/b.png", "/uploads/"} {
		assert.ErrorIs(t, s.DeleteFile(ctx, u), ErrInvalidURL, u)
	}
	assert.NoError(t, s.DeleteFile(ctx, ""))
}

func TestS3BaseURL(t *testing.T) {
	assert.Equal(t, "https://shop.s3.us-east-1.amazonaws.com",
		s3BaseURL(config.S3Config{Bucket: "shop", Region: "us-east-1"}))
	assert.Equal(t, "https://cdn.example.com",
		s3BaseURL(config.S3Config{Bucket: "shop", PublicBaseURL: "https://cdn.example.com/"}))
}

func TestObjectNameFromURL(t *testing.T) {
	base := "https://cdn.example.com"

	name, err := objectNameFromURL(base, base+"/uploads/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "uploads/abc.png", name)

	for _, u := range []string{"https://other.com/uploads/a.png", base + "/private/a.png", base + "/uploads/../a.png"} {
		_, err := objectNameFromURL(base, u)
		assert.ErrorIs(t, err, ErrInvalidURL, u)
	}
}
