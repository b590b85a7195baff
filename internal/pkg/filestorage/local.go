package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

// MaxImageSize is the largest accepted logbook image
const MaxImageSize = 5 << 20

var (
	// ErrUnsupportedType is returned for files that are not accepted images
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrFileTooLarge is returned for files above MaxImageSize
	ErrFileTooLarge = errors.New("file too large")
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FileStorage stores uploaded bytes and returns the URI they are served from
type FileStorage interface {
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(fileURL string) error
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL, when set, prefixes returned URIs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// BasePath returns the directory files are written to
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// ValidateImage checks the extension and size of an uploaded image
func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return ErrUnsupportedType
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(fileHeader.Filename))] {
		return ErrUnsupportedType
	}
	if fileHeader.Size > MaxImageSize {
		return ErrFileTooLarge
	}
	return nil
}

// SaveFileWithPath saves a file under subPath with a random name and returns its URI
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	subPath = path.Clean("/" + filepath.ToSlash(subPath))[1:]
	dir := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	rel := path.Join(subPath, name)
	if ls.baseURL != "" {
		return ls.baseURL + "/" + rel, nil
	}
	return path.Join("uploads", rel), nil
}

// DeleteFile removes a stored file given the URI SaveFileWithPath returned. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	physical, err := ls.physicalPath(fileURL)
	if err != nil {
		return err
	}

	if err := os.Remove(physical); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (ls *LocalStorage) physicalPath(fileURL string) (string, error) {
	rel := fileURL
	switch {
	case ls.baseURL != "" && strings.HasPrefix(fileURL, ls.baseURL+"/"):
		rel = strings.TrimPrefix(fileURL, ls.baseURL+"/")
	case strings.HasPrefix(fileURL, "uploads/"):
		rel = strings.TrimPrefix(fileURL, "uploads/")
	}

	rel = path.Clean("/" + rel)[1:]
	if rel == "" || rel == "." {
		return "", fmt.Errorf("invalid file path: %s", fileURL)
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel)), nil
}
