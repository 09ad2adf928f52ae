// Package storage implements the filesystem-backed blob store for uploaded
// and transformed images. Blobs live flat under a single root directory and
// are served by the HTTP layer under a fixed public prefix, mapped 1:1 to
// filenames.
//
// Naming: a stored blob's name is the sanitized, lowercased base of the
// client-supplied filename plus a creation-time disambiguator and the
// original extension, e.g. "team_photo-1717171717171717171.jpg". Files are
// created with O_EXCL so two concurrent saves can never land on the same
// name: on a collision the timestamp is simply re-derived.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// nonAlnum matches every character replaced by '_' in a sanitized base name.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// maxSaveAttempts bounds the O_EXCL retry loop. Nanosecond timestamps make
// more than one retry practically unreachable.
const maxSaveAttempts = 5

// BlobStore stores image blobs under Root and maps them to public URLs
// under PublicPrefix. The zero value is not usable; construct with New.
type BlobStore struct {
	// Root is the on-disk directory holding all blobs. It is created
	// lazily on the first Save if absent.
	Root string
	// PublicPrefix is the URL prefix under which blobs are served,
	// e.g. "/uploads".
	PublicPrefix string
}

// New returns a BlobStore rooted at dir, serving under publicPrefix.
func New(dir, publicPrefix string) *BlobStore {
	return &BlobStore{Root: dir, PublicPrefix: strings.TrimSuffix(publicPrefix, "/")}
}

// Save writes data as a new uniquely named blob and returns its on-disk
// path. The name is derived from originalName (sanitized base + timestamp +
// original extension). The store root is created if it does not exist yet.
func (s *BlobStore) Save(data []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", fmt.Errorf("create blob root %s: %w", s.Root, err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	base := sanitizeBase(strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName)))

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		name := fmt.Sprintf("%s-%d%s", base, time.Now().UnixNano(), ext)
		p := filepath.Join(s.Root, name)

		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create blob %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(p)
			return "", fmt.Errorf("write blob %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(p)
			return "", fmt.Errorf("close blob %s: %w", name, err)
		}
		return p, nil
	}
	return "", fmt.Errorf("save blob: name collision persisted for %q", originalName)
}

// Remove deletes a blob best-effort. Failure to delete is logged and never
// surfaced: a stale file is an acceptable residual, not a correctness
// violation. Removing a blob that is already gone is a no-op.
func (s *BlobStore) Remove(p string) {
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("blob", p).Msg("blob cleanup failed")
	}
}

// PublicURL maps a stored blob path to its servable URL under the public
// prefix, e.g. "/uploads/team_photo-1717...jpg".
func (s *BlobStore) PublicURL(p string) string {
	return path.Join(s.PublicPrefix, filepath.Base(p))
}

// sanitizeBase lowercases the name and collapses every non-alphanumeric run
// into a single underscore. An empty or fully stripped name falls back to
// "upload" so the stored filename never starts with the separator.
func sanitizeBase(name string) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(name), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		return "upload"
	}
	return base
}
