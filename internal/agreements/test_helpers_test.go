package agreements

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"msa-backend/agreement/model"
	"msa-backend/agreement/render"
	"msa-backend/internal/artifacts"
	"msa-backend/internal/convert"
	"msa-backend/internal/shared/storage/object/local"
	"msa-backend/internal/signatures"
)

// countingAssembler wraps the real assembler and records calls.
type countingAssembler struct {
	inner *render.Assembler
	calls int
}

func (a *countingAssembler) Assemble(content model.ContentMapping) ([]byte, error) {
	a.calls++
	return a.inner.Assemble(content)
}

// fakeConverter stands in for soffice: it writes <base>.pdf or fails.
type fakeConverter struct {
	fail  bool
	calls int
}

func (c *fakeConverter) Convert(ctx context.Context, inputPath, outDir string) (convert.Output, error) {
	c.calls++
	if c.fail {
		return convert.Output{Stderr: "Error: source file could not be loaded"}, errors.New("exit status 1")
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if err := os.WriteFile(filepath.Join(outDir, base+".pdf"), []byte("%PDF-1.4\n% fake\n"), 0o644); err != nil {
		return convert.Output{}, err
	}
	return convert.Output{Stdout: "convert " + inputPath + " -> " + base + ".pdf"}, nil
}

type testRoots struct {
	docs, pdfs, sigs, hist string
}

type testEnv struct {
	svc       *Service
	assembler *countingAssembler
	converter *fakeConverter
	roots     testRoots
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	base := t.TempDir()
	roots := testRoots{
		docs: filepath.Join(base, "temp_docx"),
		pdfs: filepath.Join(base, "temp_pdf"),
		sigs: filepath.Join(base, "temp_signatures"),
		hist: filepath.Join(base, "edit_history"),
	}
	reg := artifacts.NewRegistry(artifacts.Stores{
		Documents:  local.New(roots.docs),
		Renditions: local.New(roots.pdfs),
		Signatures: local.New(roots.sigs),
		History:    local.New(roots.hist),
	})
	asm := &countingAssembler{inner: render.NewAssembler()}
	conv := &fakeConverter{}
	svc := NewService(signatures.NewStore(reg), convert.NewService(asm, conv, reg), reg)
	return &testEnv{svc: svc, assembler: asm, converter: conv, roots: roots}
}

func validValues() url.Values {
	v := url.Values{}
	v.Set("name", "Acme Ltd")
	v.Set("websiteUrl", "https://acme.test")
	v.Set("registrationNumber", "REG-42")
	v.Set("headquartersLocation", "Singapore")
	v.Set("countriesOfOperation", "SG, IN")
	v.Set("businessType", "Private")
	v.Set("industryType", "Consulting")
	v.Set("billingAddress", "1 Main Street")
	v.Set("billing_contact_name", "Jane Roe")
	v.Set("billing_email", "billing@acme.test")
	v.Set("start_date", "2024-01-01")
	v.Set("contact_person_designation", "Manager")
	v.Set("contact_person_number", "+65 5555")
	v.Set("chervic_date", "2024-01-02")
	v.Set("contact_person_sign_date", "2024-01-03")
	return v
}

func signatureURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 60, 20))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return n
}
