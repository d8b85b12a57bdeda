// Package media handles file ingestion for property listings. The
// persistence core only ever sees the resulting (property, path, kind)
// tuple.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"imobicrm/internal/models"
	"imobicrm/internal/store"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".m4v": true, ".avi": true,
}

// Classify maps a file name to a media kind by extension. The second
// return is false for unrecognized extensions; such files are dropped
// and never persisted.
func Classify(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExts[ext]:
		return models.MediaImage, true
	case videoExts[ext]:
		return models.MediaVideo, true
	default:
		return "", false
	}
}

// Ingestor writes uploaded files under a media root, one directory per
// property, and records them through the store.
type Ingestor struct {
	root  string
	store store.Store
}

// NewIngestor creates an ingestor rooted at dir.
func NewIngestor(dir string, s store.Store) *Ingestor {
	return &Ingestor{root: dir, store: s}
}

// Save stores one uploaded file for a property. Unrecognized
// extensions return (nil, nil): the file is silently dropped.
func (ing *Ingestor) Save(ctx context.Context, propertyID uint, name string, r io.Reader) (*models.Media, error) {
	kind, ok := Classify(name)
	if !ok {
		return nil, nil
	}

	dir := filepath.Join(ing.root, fmt.Sprintf("%04d", propertyID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	dest := filepath.Join(dir, sanitizeFilename(name))
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		dest = strings.TrimSuffix(dest, ext) + "-" + uuid.NewString()[:8] + ext
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return nil, fmt.Errorf("failed to write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("failed to close media file: %w", err)
	}

	m := &models.Media{PropertyID: propertyID, FilePath: dest, Kind: kind}
	if err := ing.store.CreateMedia(ctx, m); err != nil {
		os.Remove(dest)
		return nil, err
	}
	return m, nil
}

// Load returns a property's stored media split into image and video
// paths, in insertion order.
func (ing *Ingestor) Load(ctx context.Context, propertyID uint) (images, videos []string, err error) {
	rows, err := ing.store.ListMedia(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}
	for _, m := range rows {
		switch m.Kind {
		case models.MediaImage:
			images = append(images, m.FilePath)
		case models.MediaVideo:
			videos = append(videos, m.FilePath)
		}
	}
	return images, videos, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '-', c == '_', c == '.':
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return uuid.NewString()
	}
	return b.String()
}
