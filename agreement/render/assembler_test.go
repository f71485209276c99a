package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"msa-backend/agreement/model"
)

type mapLoader map[string][]byte

func (m mapLoader) ReadImage(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func sampleContent() model.ContentMapping {
	return model.ContentMapping{
		model.FieldName:                     "Acme Ltd",
		model.FieldHeadquartersLocation:     "Singapore",
		model.FieldRegistrationNumber:       "REG-42",
		model.FieldBillingAddress:           "1 Main Street",
		model.FieldBillingContactName:       "Jane Roe",
		model.FieldBillingEmail:             "billing@acme.test",
		model.FieldStartDate:                "2024-01-01",
		model.FieldContactPersonDesignation: "Manager",
		model.FieldContactPersonNumber:      "+65 5555",
		model.FieldChervicDate:              "2024-01-02",
		model.FieldContactPersonSignDate:    "2024-01-03",
	}
}

func readPart(t *testing.T, docx []byte, name string) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func hasPart(docx []byte, name string) bool {
	reader, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	if err != nil {
		return false
	}
	for _, file := range reader.File {
		if file.Name == name {
			return true
		}
	}
	return false
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected to find %q", needle)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("did not expect to find %q", needle)
	}
}

func TestAssembleWithoutSignatures(t *testing.T) {
	a := &Assembler{Images: mapLoader{}}
	docx, err := a.Assemble(sampleContent())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/styles.xml", "word/footer1.xml", "word/_rels/document.xml.rels"} {
		if !hasPart(docx, part) {
			t.Fatalf("missing part %s", part)
		}
	}

	doc := readPart(t, docx, "word/document.xml")
	assertContains(t, doc, "Master Services Agreement")
	assertContains(t, doc, "is made and effective from 2024-01-01 by &amp; between:")
	assertContains(t, doc, "Acme Ltd is a company existing and operating in Singapore, having Business License Number REG-42")
	assertContains(t, doc, `<w:br w:type="page"/>`)
	assertContains(t, doc, `<w:jc w:val="both"/>`)
	assertContains(t, doc, `<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"`)
	assertContains(t, doc, "IN WITNESS WHEREOF")
	assertNotContains(t, doc, "<w:tbl>")
	assertNotContains(t, doc, "{{")

	footer := readPart(t, docx, "word/footer1.xml")
	assertContains(t, footer, `w:instr="PAGE"`)
	assertContains(t, footer, `w:instr="NUMPAGES"`)

	styles := readPart(t, docx, "word/styles.xml")
	assertContains(t, styles, `w:ascii="Times New Roman"`)
	assertContains(t, styles, `w:styleId="TableGrid"`)
}

func TestAssembleUsesPlaceholdersForMissingFields(t *testing.T) {
	a := &Assembler{Images: mapLoader{}}
	docx, err := a.Assemble(model.ContentMapping{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	doc := readPart(t, docx, "word/document.xml")
	assertContains(t, doc, "Company Name is a company existing and operating in Location / Headquarters")
}

func TestAssembleUnescapesSanitizedValues(t *testing.T) {
	content := sampleContent()
	content[model.FieldName] = "Acme &amp; Co"
	a := &Assembler{Images: mapLoader{}}
	docx, err := a.Assemble(content)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	doc := readPart(t, docx, "word/document.xml")
	assertContains(t, doc, "Acme &amp; Co is a company")
	assertNotContains(t, doc, "&amp;amp;")
}

func TestAssembleWithBothSignatures(t *testing.T) {
	content := sampleContent()
	content[model.FieldCustomerSignature] = "/sig/customer.png"
	content[model.FieldChervicSignature] = "/sig/chervic.png"
	a := &Assembler{Images: mapLoader{
		"/sig/customer.png": pngBytes(t, 200, 100),
		"/sig/chervic.png":  pngBytes(t, 100, 100),
	}}

	docx, err := a.Assemble(content)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	doc := readPart(t, docx, "word/document.xml")
	assertContains(t, doc, `<w:tblStyle w:val="TableGrid"/>`)
	assertContains(t, doc, "Designation: Manager")
	assertContains(t, doc, "Date 2024-01-03")
	assertContains(t, doc, "CHERVIC ADVISORY SERVICES PRIVATE LIMITED")
	assertContains(t, doc, "Date: 2024-01-02")
	// 2" wide; the 2:1 image is 1" tall, the square one 2" tall.
	assertContains(t, doc, `<wp:extent cx="1828800" cy="914400"/>`)
	assertContains(t, doc, `<wp:extent cx="1828800" cy="1828800"/>`)
	if got := strings.Count(doc, "<w:drawing>"); got != 2 {
		t.Fatalf("expected 2 drawings, got %d", got)
	}

	rels := readPart(t, docx, "word/_rels/document.xml.rels")
	assertContains(t, rels, `Target="media/image1.png"`)
	assertContains(t, rels, `Target="media/image2.png"`)
	if !hasPart(docx, "word/media/image1.png") || !hasPart(docx, "word/media/image2.png") {
		t.Fatalf("expected both media parts")
	}
}

func TestAssembleOnlyProviderSignature(t *testing.T) {
	content := sampleContent()
	content[model.FieldChervicSignature] = "/sig/chervic.png"
	a := &Assembler{Images: mapLoader{"/sig/chervic.png": pngBytes(t, 40, 20)}}

	docx, err := a.Assemble(content)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	doc := readPart(t, docx, "word/document.xml")
	assertContains(t, doc, "<w:tbl>")
	assertContains(t, doc, "Mr. Vasudevan")
	assertNotContains(t, doc, "Designation: Manager")
	if got := strings.Count(doc, "<w:tc>"); got != 2 {
		t.Fatalf("expected 2 cells, got %d", got)
	}
	if got := strings.Count(doc, "<w:drawing>"); got != 1 {
		t.Fatalf("expected 1 drawing, got %d", got)
	}
}

func TestAssembleMissingSignatureFile(t *testing.T) {
	content := sampleContent()
	content[model.FieldCustomerSignature] = filepath.Join(t.TempDir(), "missing.png")
	a := NewAssembler()

	_, err := a.Assemble(content)
	if !errors.Is(err, ErrSignatureNotFound) {
		t.Fatalf("expected ErrSignatureNotFound, got %v", err)
	}
}

func TestAssembleRejectsUndecodableImage(t *testing.T) {
	content := sampleContent()
	content[model.FieldChervicSignature] = "/sig/chervic.png"
	a := &Assembler{Images: mapLoader{"/sig/chervic.png": []byte("not an image")}}

	_, err := a.Assemble(content)
	if err == nil {
		t.Fatalf("expected embedding error")
	}
	if errors.Is(err, ErrSignatureNotFound) {
		t.Fatalf("did not expect ErrSignatureNotFound: %v", err)
	}
}

func TestValidateDocumentXMLStrict(t *testing.T) {
	good := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w:p><w:r><w:t xml:space="preserve">x</w:t></w:r></w:p></w:body></w:document>`
	if err := validateDocumentXMLStrict(good); err != nil {
		t.Fatalf("expected valid xml, got %v", err)
	}

	undeclared := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w14:p/></w:body></w:document>`
	if err := validateDocumentXMLStrict(undeclared); err == nil {
		t.Fatalf("expected undeclared prefix to fail")
	}

	broken := `<w:document xmlns:w="` + wmlNamespace + `"><w:body>`
	if err := validateDocumentXMLStrict(broken); err == nil {
		t.Fatalf("expected unterminated xml to fail")
	}
}

func TestFindRemainingToken(t *testing.T) {
	cases := map[string]string{
		"plain text":          "",
		"a {{TOKEN}} b":       "{{TOKEN}}",
		"dangling {{ open":    "{{ open",
		"closing only }} end": "closing only }}",
	}
	for input, want := range cases {
		if got := findRemainingToken(input); got != want {
			t.Fatalf("findRemainingToken(%q) = %q, want %q", input, got, want)
		}
	}
}
