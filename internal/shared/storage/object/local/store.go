package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"msa-backend/internal/shared/storage/object"
	"msa-backend/internal/shared/util"
)

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
}

var _ object.ObjectStore = (*Store)(nil)

// New creates a new local object store rooted at baseDir. Relative roots are
// resolved so recorded paths stay absolute.
func New(baseDir string) *Store {
	if abs, err := filepath.Abs(baseDir); err == nil {
		baseDir = abs
	}
	return &Store{baseDir: baseDir}
}

// Dir returns the namespace directory, creating it if needed.
func (s *Store) Dir(ctx context.Context, namespace string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dirPath := s.namespaceDir(namespace)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return dirPath, nil
}

// Put writes the reader to <root>/<hash(namespace)>/<fileName>.
func (s *Store) Put(ctx context.Context, namespace string, fileName string, r io.Reader) (object.Object, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return object.Object{}, fmt.Errorf("sanitize file name: %w", err)
	}

	dirPath, err := s.Dir(ctx, namespace)
	if err != nil {
		return object.Object{}, err
	}

	fullPath := filepath.Join(dirPath, sanitizedName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return object.Object{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return object.Object{}, fmt.Errorf("read sniff: %w", readErr)
	}

	size := int64(0)
	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return object.Object{}, fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		return object.Object{}, fmt.Errorf("write body: %w", err)
	}
	size += written

	if err := f.Sync(); err != nil {
		return object.Object{}, fmt.Errorf("sync: %w", err)
	}

	return object.Object{
		Key:      filepath.Join(util.HashUserKey(namespace), sanitizedName),
		Path:     fullPath,
		Size:     size,
		MimeType: http.DetectContentType(sniff[:n]),
	}, nil
}

// Remove deletes a single file under the store root. A missing file is not an error.
func (s *Store) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.contains(path) {
		return object.ErrInvalidKey
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveNamespace deletes the namespace directory and everything in it.
func (s *Store) RemoveNamespace(ctx context.Context, namespace string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.RemoveAll(s.namespaceDir(namespace))
}

// RemoveStale deletes namespace directories whose newest entry, or the
// directory itself, was modified before the cutoff. A missing root is empty.
func (s *Store) RemoveStale(ctx context.Context, before time.Time) (int, error) {
	entries, err := os.ReadDir(s.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read root: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(s.baseDir, entry.Name())
		latest, err := lastModified(dirPath)
		if err != nil {
			return removed, err
		}
		if !latest.Before(before) {
			continue
		}
		if err := os.RemoveAll(dirPath); err != nil {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

func lastModified(dirPath string) (time.Time, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return time.Time{}, err
	}
	latest := info.ModTime()
	err = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.ModTime().After(latest) {
			latest = fi.ModTime()
		}
		return nil
	})
	return latest, err
}

func (s *Store) namespaceDir(namespace string) string {
	return filepath.Join(s.baseDir, util.HashUserKey(namespace))
}

func (s *Store) contains(path string) bool {
	rel, err := filepath.Rel(s.baseDir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..")
}
