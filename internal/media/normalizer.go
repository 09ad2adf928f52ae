// Package media transforms uploaded images into the fixed-dimension
// thumbnails served by the site. Normalization is a cover-crop resize: the
// source is scaled to fill the target box and center-cropped, so the output
// dimensions are exactly Width×Height regardless of the input aspect ratio.
package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/tbourn/go-landing-backend/internal/storage"
)

// Default thumbnail dimensions for catalog images.
const (
	DefaultWidth  = 450
	DefaultHeight = 350
)

// croppedSuffix is appended to the original's base name to form the
// derivative's name, so re-normalizing the same original is idempotent in
// naming. Callers must normalize each original exactly once: the original
// is deleted on success.
const croppedSuffix = "-cropped"

// Normalizer produces fixed-size derivatives of stored blobs.
type Normalizer struct {
	// Blobs is used to delete the original after a successful transform.
	Blobs *storage.BlobStore
	// Width and Height are the target dimensions. Zero values fall back
	// to the package defaults.
	Width  int
	Height int
}

// New returns a Normalizer producing DefaultWidth×DefaultHeight thumbnails
// backed by the given blob store.
func New(blobs *storage.BlobStore) *Normalizer {
	return &Normalizer{Blobs: blobs, Width: DefaultWidth, Height: DefaultHeight}
}

// Normalize reads the blob at origPath, writes a Width×Height derivative
// next to it named "<base>-cropped<ext>", and deletes the original
// best-effort. It returns the derivative's path.
//
// On any failure (unreadable file, unsupported format, write error) the
// error is returned and the original is left untouched; the caller decides
// whether to fall back to serving the original.
func (n *Normalizer) Normalize(origPath string) (string, error) {
	w, h := n.Width, n.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	src, err := imaging.Open(origPath)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", origPath, err)
	}

	thumb := imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)

	ext := filepath.Ext(origPath)
	outPath := strings.TrimSuffix(origPath, ext) + croppedSuffix + ext
	if err := imaging.Save(thumb, outPath); err != nil {
		return "", fmt.Errorf("save %s: %w", outPath, err)
	}

	n.Blobs.Remove(origPath)
	return outPath, nil
}
