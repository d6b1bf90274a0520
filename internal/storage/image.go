package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"barbershop/internal/domain"
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectImage checks both the extension of originalName and the sniffed
// content type of data. The returned extension follows the content, so a PNG
// uploaded as "x.jpg" is stored as ".png".
func DetectImage(data []byte, originalName string) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("archivo vacío: %w", domain.ErrInvalidFile)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", "", fmt.Errorf("extensión %q no permitida: %w", ext, domain.ErrInvalidFile)
	}

	mtype := mimetype.Detect(data)
	contentType := strings.SplitN(mtype.String(), ";", 2)[0]
	storedExt, ok := allowedTypes[contentType]
	if !ok {
		return "", "", fmt.Errorf("tipo de archivo %q no permitido: %w", contentType, domain.ErrInvalidFile)
	}

	return contentType, storedExt, nil
}

// GenerateName returns a collision-free file name keeping ext.
func GenerateName(ext string) string {
	return uuid.NewString() + ext
}
