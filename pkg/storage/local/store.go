package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/saracafe/saracafe-backend/pkg/config"
	"github.com/saracafe/saracafe-backend/pkg/logger"
)

const imagesFolder = "uploads/images"

// ErrUnsupportedExtension signals an upload outside the image allow-list.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// Store persists uploaded images under a content root and serves them back
// by root-relative path.
type Store struct {
	root string
	logg *logger.Logger
}

// NewStore binds an image store to the configured media root.
func NewStore(cfg config.MediaConfig, logg *logger.Logger) (*Store, error) {
	root := strings.TrimSpace(cfg.RootDir)
	if root == "" {
		return nil, errors.New("media root dir is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving media root: %w", err)
	}
	return &Store{root: abs, logg: logg}, nil
}

// Root returns the absolute content root the store writes under.
func (s *Store) Root() string {
	return s.root
}

// Save writes the uploaded bytes under a freshly generated filename and
// returns the root-relative path suitable for public serving. The original
// filename contributes only its extension, which must be on the image
// allow-list.
func (s *Store) Save(ctx context.Context, r io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(path.Ext(originalFilename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q (allowed: jpg, jpeg, png, gif, webp)", ErrUnsupportedExtension, ext)
	}

	dir := filepath.Join(s.root, filepath.FromSlash(imagesFolder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating uploads dir: %w", err)
	}

	name := uuid.NewString() + ext
	dest := filepath.Join(dir, name)

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return "", fmt.Errorf("writing image bytes: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("closing image file: %w", err)
	}

	rel := "/" + path.Join(imagesFolder, name)
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "image_path", rel), "image stored")
	}
	return rel, nil
}

// Delete removes a previously stored image by its root-relative path. It is
// best-effort: every failure, including a missing file, reports false and is
// never surfaced as an error.
func (s *Store) Delete(ctx context.Context, relativePath string) bool {
	rel := strings.TrimPrefix(strings.TrimSpace(relativePath), "/")
	if rel == "" {
		return false
	}

	dest := filepath.Join(s.root, filepath.FromSlash(rel))
	// refuse anything that escapes the content root
	if !strings.HasPrefix(dest, s.root+string(os.PathSeparator)) {
		return false
	}

	if err := os.Remove(dest); err != nil {
		if s.logg != nil && !os.IsNotExist(err) {
			s.logg.Warn(s.logg.WithField(ctx, "image_path", relativePath), "image delete failed")
		}
		return false
	}
	return true
}
