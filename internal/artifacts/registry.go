// Package artifacts tracks the files a session owns: working documents,
// PDF renditions, signature images and edit-history logs.
package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/metrics"
	"msa-backend/internal/shared/storage/object"
	"msa-backend/internal/shared/telemetry"
)

// Registry maps artifact filenames to paths inside per-session namespaces
// of four independent object stores.
type Registry struct {
	stores map[Kind]object.ObjectStore
	now    func() time.Time
}

// Stores groups the object store backing each kind.
type Stores struct {
	Documents  object.ObjectStore
	Renditions object.ObjectStore
	Signatures object.ObjectStore
	History    object.ObjectStore
}

// NewRegistry wires a registry over the given stores.
func NewRegistry(s Stores) *Registry {
	return &Registry{
		stores: map[Kind]object.ObjectStore{
			KindDocument:  s.Documents,
			KindRendition: s.Renditions,
			KindSignature: s.Signatures,
			KindHistory:   s.History,
		},
		now: time.Now,
	}
}

// Put writes a file for kind into the session's namespace.
func (r *Registry) Put(ctx context.Context, st *sessions.State, kind Kind, name string, rd io.Reader) (object.Object, error) {
	return r.stores[kind].Put(ctx, st.Namespace(), name, rd)
}

// Dir returns (and creates) the session's directory for kind.
func (r *Registry) Dir(ctx context.Context, st *sessions.State, kind Kind) (string, error) {
	return r.stores[kind].Dir(ctx, st.Namespace())
}

// Remove deletes one file of kind. Missing files are not an error.
func (r *Registry) Remove(ctx context.Context, kind Kind, path string) error {
	return r.stores[kind].Remove(ctx, path)
}

// RecordArtifact registers both halves of a generated agreement.
func (r *Registry) RecordArtifact(st *sessions.State, filename, docPath, pdfPath string) {
	if st.Documents == nil {
		st.Documents = make(map[string]string)
	}
	if st.Renditions == nil {
		st.Renditions = make(map[string]string)
	}
	st.Documents[filename] = docPath
	st.Renditions[filename] = pdfPath
	st.MarkModified()
}

// RecordSignature registers a stored signature image.
func (r *Registry) RecordSignature(st *sessions.State, filename, path string) {
	if st.Signatures == nil {
		st.Signatures = make(map[string]string)
	}
	st.Signatures[filename] = path
	st.MarkModified()
}

// Lookup resolves filename for kind. Unknown names and paths that no longer
// exist on disk both report false.
func (r *Registry) Lookup(st *sessions.State, kind Kind, filename string) (string, bool) {
	path, ok := records(st, kind)[filename]
	if !ok || path == "" {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Artifact resolves a generated agreement by its PDF filename.
func (r *Registry) Artifact(st *sessions.State, filename string) (Artifact, bool) {
	pdfPath, ok := r.Lookup(st, KindRendition, filename)
	if !ok {
		return Artifact{}, false
	}
	docPath, _ := r.Lookup(st, KindDocument, filename)
	return Artifact{Filename: filename, DocumentPath: docPath, RenditionPath: pdfPath}, true
}

// AppendHistory adds one entry to the artifact's log. Failures are logged
// and never returned; history must not block the submission.
func (r *Registry) AppendHistory(ctx context.Context, st *sessions.State, filename, username string, changes Changes) {
	fields := map[string]any{"artifact": filename, "session": st.ID}

	dir, err := r.Dir(ctx, st, KindHistory)
	if err != nil {
		fields["error"] = err
		telemetry.Error("history.dir_failed", fields)
		return
	}
	name := HistoryFileName(filename)
	entries := readHistory(filepath.Join(dir, name), fields)
	entries = append(entries, HistoryEntry{
		Timestamp: r.now().UTC(),
		Username:  username,
		Changes:   changes,
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fields["error"] = err
		telemetry.Error("history.encode_failed", fields)
		return
	}
	obj, err := r.Put(ctx, st, KindHistory, name, bytes.NewReader(data))
	if err != nil {
		fields["error"] = err
		telemetry.Error("history.write_failed", fields)
		return
	}

	if st.History == nil {
		st.History = make(map[string]string)
	}
	st.History[filename] = obj.Path
	st.MarkModified()
	fields["entries"] = len(entries)
	telemetry.Info("history.appended", fields)
}

// History returns the recorded entries for an artifact.
func (r *Registry) History(st *sessions.State, filename string) ([]HistoryEntry, bool) {
	path, ok := r.Lookup(st, KindHistory, filename)
	if !ok {
		return nil, false
	}
	return readHistory(path, map[string]any{"artifact": filename}), true
}

// Teardown deletes every file the session owns, then each kind's session
// directory, then clears the state. Individual failures are logged and
// skipped.
func (r *Registry) Teardown(ctx context.Context, st *sessions.State) {
	removed, failed := 0, 0
	for _, kind := range kinds {
		for name, path := range records(st, kind) {
			if err := r.Remove(ctx, kind, path); err != nil {
				failed++
				telemetry.Error("teardown.remove_failed", map[string]any{
					"kind":  kind.String(),
					"name":  name,
					"path":  path,
					"error": err,
				})
				continue
			}
			removed++
		}
	}
	for _, kind := range kinds {
		if err := r.stores[kind].RemoveNamespace(ctx, st.Namespace()); err != nil {
			failed++
			telemetry.Error("teardown.dir_failed", map[string]any{
				"kind":  kind.String(),
				"error": err,
			})
		}
	}
	telemetry.Info("session.teardown", map[string]any{
		"session": st.ID,
		"removed": removed,
		"failed":  failed,
	})
	metrics.IncSessionTeardown()
	st.Clear()
}

// SweepStale removes session directories of every kind that have not been
// written to since before. It catches sessions that expired without a
// logout. Errors are logged per kind; the total removed is returned.
func (r *Registry) SweepStale(ctx context.Context, before time.Time) int {
	total := 0
	for _, kind := range kinds {
		n, err := r.stores[kind].RemoveStale(ctx, before)
		total += n
		if err != nil {
			telemetry.Error("sweep.failed", map[string]any{
				"kind":  kind.String(),
				"error": err,
			})
		}
	}
	if total > 0 {
		telemetry.Info("artifacts.swept", map[string]any{
			"removed": total,
			"before":  before.UTC().Format(time.RFC3339),
		})
	}
	return total
}

func records(st *sessions.State, kind Kind) map[string]string {
	switch kind {
	case KindDocument:
		return st.Documents
	case KindRendition:
		return st.Renditions
	case KindSignature:
		return st.Signatures
	case KindHistory:
		return st.History
	default:
		return nil
	}
}

// readHistory treats a missing or unreadable log as empty.
func readHistory(path string, fields map[string]any) []HistoryEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			telemetry.Warn("history.read_failed", withError(fields, err))
		}
		return nil
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		telemetry.Warn("history.corrupt", withError(fields, fmt.Errorf("decode %s: %w", filepath.Base(path), err)))
		return nil
	}
	return entries
}

func withError(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err
	return out
}
