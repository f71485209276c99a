// Package convert assembles an agreement, writes the working DOCX and runs
// the external converter to produce the PDF rendition.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"msa-backend/agreement/model"
	"msa-backend/internal/artifacts"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/metrics"
	"msa-backend/internal/shared/telemetry"
	"msa-backend/internal/shared/util"
)

// Assembler renders a content mapping into DOCX bytes.
type Assembler interface {
	Assemble(content model.ContentMapping) ([]byte, error)
}

type Service struct {
	Assembler Assembler
	Converter Converter
	Registry  *artifacts.Registry
}

func NewService(assembler Assembler, converter Converter, registry *artifacts.Registry) *Service {
	return &Service{Assembler: assembler, Converter: converter, Registry: registry}
}

// Result is a successfully generated agreement.
type Result struct {
	Filename string
	PDF      []byte
	Artifact artifacts.Artifact
}

// ArtifactName builds MSA_<Company_Name>_<hex>.pdf. The random suffix keeps
// concurrent submissions from colliding.
func ArtifactName(companyName string) string {
	name := util.FileNameFragment(html.UnescapeString(companyName))
	return fmt.Sprintf("MSA_%s_%s.pdf", name, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Generate runs assemble, write, convert, verify and read. On failure every
// partly written file is removed and a *ConversionError is returned.
func (s *Service) Generate(ctx context.Context, st *sessions.State, content model.ContentMapping) (Result, error) {
	start := time.Now()
	metrics.IncConversionStarted()

	pdfName := ArtifactName(content[model.FieldName])
	docxName := util.ReplaceExt(pdfName, ".docx")
	fields := map[string]any{"artifact": pdfName, "session": st.ID}

	var docPath, pdfPath string
	fail := func(stage string, out Output, err error) (Result, error) {
		s.cleanup(ctx, docPath, pdfPath)
		metrics.IncConversionFailed()
		fields["stage"] = stage
		fields["error"] = err
		fields["stdout"] = out.Stdout
		fields["stderr"] = out.Stderr
		telemetry.Error("convert.failed", fields)
		return Result{}, &ConversionError{Stage: stage, Stdout: out.Stdout, Stderr: out.Stderr, Err: err}
	}

	docx, err := s.Assembler.Assemble(content)
	if err != nil {
		return fail(StageAssemble, Output{}, err)
	}

	docDir, err := s.Registry.Dir(ctx, st, artifacts.KindDocument)
	if err != nil {
		return fail(StageWrite, Output{}, err)
	}
	docPath = filepath.Join(docDir, docxName)
	obj, err := s.Registry.Put(ctx, st, artifacts.KindDocument, docxName, bytes.NewReader(docx))
	if err != nil {
		return fail(StageWrite, Output{}, err)
	}
	docPath = obj.Path
	telemetry.Info("convert.docx_saved", map[string]any{"artifact": pdfName, "path": docPath, "bytes": obj.Size})

	outDir, err := s.Registry.Dir(ctx, st, artifacts.KindRendition)
	if err != nil {
		return fail(StageWrite, Output{}, err)
	}
	pdfPath = filepath.Join(outDir, pdfName)

	out, err := s.Converter.Convert(ctx, docPath, outDir)
	if err != nil {
		return fail(StageConvert, out, err)
	}
	if info, err := os.Stat(pdfPath); err != nil || info.IsDir() {
		return fail(StageVerify, out, fmt.Errorf("pdf was not generated at %s", pdfPath))
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return fail(StageRead, out, err)
	}

	s.Registry.RecordArtifact(st, pdfName, docPath, pdfPath)
	artifact := artifacts.Artifact{
		Filename:      pdfName,
		DocumentPath:  docPath,
		RenditionPath: pdfPath,
		Pages:         PageCount(pdf),
	}

	metrics.IncConversionCompleted()
	metrics.ObserveConversionDurationMs(metrics.SinceMillis(start))
	telemetry.Info("convert.completed", map[string]any{
		"artifact":    pdfName,
		"session":     st.ID,
		"pages":       artifact.Pages,
		"stdout":      out.Stdout,
		"duration_ms": metrics.SinceMillis(start),
	})
	return Result{Filename: pdfName, PDF: pdf, Artifact: artifact}, nil
}

func (s *Service) cleanup(ctx context.Context, docPath, pdfPath string) {
	// Cleanup must run even when the request context is already done.
	ctx = context.WithoutCancel(ctx)
	for kind, path := range map[artifacts.Kind]string{artifacts.KindDocument: docPath, artifacts.KindRendition: pdfPath} {
		if path == "" {
			continue
		}
		if err := s.Registry.Remove(ctx, kind, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			telemetry.Warn("convert.cleanup_failed", map[string]any{"path": path, "kind": kind.String(), "error": err})
		}
	}
}
