package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"qrfleet/pkg/utils"
)

const (
	maxImageSize    = 3 << 20  // 3 MiB
	maxDocumentSize = 10 << 20 // 10 MiB

	KindImage    = "image"
	KindDocument = "document"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type UploadServiceInterface interface {
	// Store validates and persists one uploaded file, returning its public
	// reference path.
	Store(file *multipart.FileHeader, declaredKind string) (string, error)
}

type UploadService struct {
	publicDir string
}

func NewUploadService(publicDir string) UploadServiceInterface {
	return &UploadService{
		publicDir: publicDir,
	}
}

// ValidateUpload checks kind, MIME type and size before any bytes are
// written. An absent kind is inferred from the MIME type.
func ValidateUpload(declaredKind string, contentType string, size int64) (string, error) {
	kind := declaredKind
	if kind == "" {
		if strings.HasPrefix(contentType, "image/") {
			kind = KindImage
		} else {
			kind = KindDocument
		}
	}

	switch kind {
	case KindImage:
		if !allowedImageTypes[contentType] {
			return "", utils.NewValidationError("File type not allowed. Use JPG, PNG or WEBP")
		}
		if size > maxImageSize {
			return "", utils.NewValidationError("File too large. Maximum size: 3MB")
		}
	case KindDocument:
		if !allowedDocumentTypes[contentType] {
			return "", utils.NewValidationError("File type not allowed. Use PDF, DOC, DOCX, XLS, XLSX, TXT or images")
		}
		if size > maxDocumentSize {
			return "", utils.NewValidationError("File too large. Maximum size: 10MB")
		}
	default:
		return "", utils.NewValidationError("Unknown upload kind")
	}

	return kind, nil
}

func (u *UploadService) Store(file *multipart.FileHeader, declaredKind string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if _, err := ValidateUpload(declaredKind, contentType, file.Size); err != nil {
		return "", err
	}

	uploadDir := filepath.Join(u.publicDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logrus.WithError(err).Error("failed to create upload directory")
		return "", utils.ErrFileStorage
	}

	name, err := uniqueFilename(file.Filename)
	if err != nil {
		return "", utils.ErrFileStorage
	}

	src, err := file.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		return "", utils.ErrFileStorage
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		logrus.WithError(err).Error("failed to create upload target")
		return "", utils.ErrFileStorage
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logrus.WithError(err).Error("failed to write uploaded file")
		return "", utils.ErrFileStorage
	}

	return "/uploads/" + name, nil
}

// uniqueFilename keeps the original extension and makes collisions under
// concurrent uploads probabilistically impossible via a random suffix.
func uniqueFilename(original string) (string, error) {
	suffix, err := utils.GenerateSecureToken(6)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext), nil
}
