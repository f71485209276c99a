// Package render builds the Master Services Agreement as a DOCX package.
package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"

	"msa-backend/agreement/clauses"
	"msa-backend/agreement/model"
)

var ErrSignatureNotFound = errors.New("signature file not found")

// ImageLoader reads signature images referenced by the content mapping.
type ImageLoader interface {
	ReadImage(path string) ([]byte, error)
}

// FileLoader reads images from the local filesystem.
type FileLoader struct{}

func (FileLoader) ReadImage(path string) ([]byte, error) {
	return os.ReadFile(filepath.Clean(path))
}

// Assembler turns a content mapping into DOCX bytes. It performs no I/O
// besides reading signature images through Images.
type Assembler struct {
	Images ImageLoader
}

func NewAssembler() *Assembler {
	return &Assembler{Images: FileLoader{}}
}

// Assemble renders the agreement. A signature path that is set but cannot
// be found fails with ErrSignatureNotFound before anything is built.
func (a *Assembler) Assemble(content model.ContentMapping) ([]byte, error) {
	loader := a.Images
	if loader == nil {
		loader = FileLoader{}
	}

	customer, err := loadSignature(loader, content[model.FieldCustomerSignature])
	if err != nil {
		return nil, err
	}
	chervic, err := loadSignature(loader, content[model.FieldChervicSignature])
	if err != nil {
		return nil, err
	}

	lookup := func(field string) string {
		return html.UnescapeString(content.Get(field))
	}

	doc := newDocumentWriter()
	doc.cover(lookup(model.FieldName))
	for i, block := range clauses.Body {
		if token := findRemainingToken(clauses.Expand(block.Text, func(string) string { return "" })); token != "" {
			return nil, fmt.Errorf("clause block %d has unresolved token %q", i, token)
		}
		doc.block(block, clauses.Expand(block.Text, lookup))
	}
	if customer != nil || chervic != nil {
		if err := doc.signatureTable(signatureTable{
			Customer: customer,
			CustomerLines: []string{
				lookup(model.FieldName),
				lookup(model.FieldBillingContactName),
				"Designation: " + lookup(model.FieldContactPersonDesignation),
				"Date " + lookup(model.FieldContactPersonSignDate),
			},
			Chervic: chervic,
			ChervicLines: []string{
				clauses.ProviderNameUpper,
				clauses.ProviderSignatory,
				"Designation: " + clauses.ProviderDesignation + " ",
				"Date: " + lookup(model.FieldChervicDate),
			},
		}); err != nil {
			return nil, err
		}
	}

	documentXML := doc.finish()
	if err := validateDocumentXMLStrict(documentXML); err != nil {
		return nil, err
	}
	return packageDocx(documentXML, doc.images)
}

func loadSignature(loader ImageLoader, path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := loader.ReadImage(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSignatureNotFound, path)
		}
		return nil, fmt.Errorf("read signature %s: %w", path, err)
	}
	return data, nil
}

func packageDocx(documentXML string, images []embeddedImage) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", []byte(documentXML)},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/footer1.xml", []byte(footerXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML(images))},
	}
	for _, img := range images {
		parts = append(parts, struct {
			name    string
			content []byte
		}{"word/" + img.Target(), img.Data})
	}

	for _, part := range parts {
		if err := writeZipFile(writer, part.name, part.content); err != nil {
			writer.Close()
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func writeZipFile(writer *zip.Writer, name string, content []byte) error {
	dst, err := writer.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	if _, err := dst.Write(content); err != nil {
		return err
	}
	return nil
}
