// Package signatures persists drawn or uploaded signature images for a
// session.
package signatures

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"msa-backend/internal/artifacts"
	"msa-backend/internal/forms"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/metrics"
	"msa-backend/internal/shared/telemetry"
)

// Role identifies which party a signature belongs to. It prefixes the
// stored filename for traceability.
type Role string

const (
	RoleChervic  Role = "chervic"
	RoleCustomer Role = "customer"
)

// Label is the user-facing party name.
func (r Role) Label() string {
	switch r {
	case RoleChervic:
		return "Chervic"
	case RoleCustomer:
		return "Customer"
	default:
		return string(r)
	}
}

// maxUploadBytes caps a single signature image.
const maxUploadBytes = 5 << 20

// Store writes signature images through the artifact registry.
type Store struct {
	Registry *artifacts.Registry
}

// NewStore constructs a Store.
func NewStore(reg *artifacts.Registry) *Store {
	return &Store{Registry: reg}
}

// SaveInline stores a data:image/...;base64 payload and returns the
// generated filename.
func (s *Store) SaveInline(ctx context.Context, st *sessions.State, role Role, dataURI string) (string, error) {
	mime, data, err := forms.DecodeDataURI(dataURI)
	if err != nil {
		return "", s.reject(role, "inline", err)
	}
	if len(data) == 0 {
		return "", s.reject(role, "inline", fmt.Errorf("empty payload"))
	}
	if len(data) > maxUploadBytes {
		return "", s.reject(role, "inline", fmt.Errorf("payload exceeds %d bytes", maxUploadBytes))
	}
	ext := forms.ExtensionForMIME(mime)
	if ext == "" {
		return "", s.reject(role, "inline", fmt.Errorf("unsupported image type %q", mime))
	}
	return s.write(ctx, st, role, ext, bytes.NewReader(data))
}

// SaveUpload stores an uploaded image file after checking its extension.
func (s *Store) SaveUpload(ctx context.Context, st *sessions.State, role Role, filename string, r io.Reader) (string, error) {
	ext := forms.ImageExtension(filename)
	if ext == "" {
		return "", s.reject(role, "upload", fmt.Errorf("extension not allowed: %q", filename))
	}
	// One byte past the cap tells an oversized file from one exactly at it.
	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return "", s.reject(role, "upload", err)
	}
	if len(data) == 0 {
		return "", s.reject(role, "upload", fmt.Errorf("empty file"))
	}
	if len(data) > maxUploadBytes {
		return "", s.reject(role, "upload", fmt.Errorf("file exceeds %d bytes", maxUploadBytes))
	}
	return s.write(ctx, st, role, ext, bytes.NewReader(data))
}

// Path resolves a stored signature filename.
func (s *Store) Path(st *sessions.State, filename string) (string, bool) {
	return s.Registry.Lookup(st, artifacts.KindSignature, filename)
}

func (s *Store) write(ctx context.Context, st *sessions.State, role Role, ext string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s.%s", role, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	obj, err := s.Registry.Put(ctx, st, artifacts.KindSignature, name, r)
	if err != nil {
		return "", s.reject(role, "write", err)
	}
	if _, err := os.Stat(obj.Path); err != nil {
		return "", s.reject(role, "verify", err)
	}
	s.Registry.RecordSignature(st, name, obj.Path)
	metrics.IncSignatureStored()
	telemetry.Info("signature.saved", map[string]any{
		"role":  string(role),
		"file":  name,
		"bytes": obj.Size,
		"mime":  obj.MimeType,
	})
	return name, nil
}

func (s *Store) reject(role Role, stage string, err error) error {
	metrics.IncSignatureRejected()
	telemetry.Warn("signature.rejected", map[string]any{
		"role":  string(role),
		"stage": stage,
		"error": err,
	})
	return fmt.Errorf("%w: %s %s: %v", ErrInvalidSignature, role, stage, err)
}
