package main

// Render a sample agreement without the HTTP stack:
//   go run ./cmd/renderdemo -out ./out/sample_msa.docx -sig ./sig.png -convert

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"msa-backend/agreement/model"
	"msa-backend/agreement/render"
	"msa-backend/internal/convert"
)

func main() {
	outPath := flag.String("out", "./out/sample_msa.docx", "output path for generated DOCX")
	sigPath := flag.String("sig", "", "optional PNG/JPEG used for both signatures")
	doConvert := flag.Bool("convert", false, "also convert the DOCX to PDF with soffice")
	sofficePath := flag.String("soffice", "soffice", "soffice binary")
	flag.Parse()

	content := sampleContent(*sigPath)

	docxBytes, err := render.NewAssembler().Assemble(content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outPath, content, docxBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedDocx(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", *outPath)

	if !*doConvert {
		return
	}
	pdfPath, pages, err := convertDocx(*sofficePath, *outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convert failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s (%d pages)\n", pdfPath, pages)
}

func writeOutputs(outPath string, content model.ContentMapping, docxBytes []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, docxBytes, 0o644); err != nil {
		return err
	}

	contentPath := filepath.Join(dir, "sample_msa_content.json")
	payload, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(contentPath, payload, 0o644)
}

func convertDocx(soffice, docxPath string) (string, int, error) {
	ctx := context.Background()
	outDir := filepath.Dir(docxPath)
	out, err := convert.NewSofficeConverter(soffice, 2*time.Minute).Convert(ctx, docxPath, outDir)
	if err != nil {
		return "", 0, fmt.Errorf("%w\nstdout: %s\nstderr: %s", err, out.Stdout, out.Stderr)
	}
	base := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", 0, err
	}
	return pdfPath, convert.PageCount(data), nil
}

func sampleContent(sigPath string) model.ContentMapping {
	content := model.ContentMapping{
		model.FieldName:                     "Acme Logistics Pte. Ltd.",
		model.FieldWebsiteURL:               "https://acme-logistics.example.com",
		model.FieldRegistrationNumber:       "201912345K",
		model.FieldHeadquartersLocation:     "1 Harbourfront Avenue, Singapore",
		model.FieldCountriesOfOperation:     "Singapore, Malaysia, India",
		model.FieldBusinessType:             "Private Limited",
		model.FieldIndustryType:             "Logistics",
		model.FieldBillingAddress:           "1 Harbourfront Avenue, #10-01, Singapore 098632",
		model.FieldBillingContactName:       "Priya Raman",
		model.FieldBillingEmail:             "billing@acme-logistics.example.com",
		model.FieldStartDate:                "2024-07-01",
		model.FieldContactPersonDesignation: "Head of Procurement",
		model.FieldContactPersonNumber:      "+65 6123 4567",
		model.FieldChervicDate:              "2024-06-20",
		model.FieldContactPersonSignDate:    "2024-06-21",
	}
	if sigPath != "" {
		content[model.FieldChervicSignature] = sigPath
		content[model.FieldCustomerSignature] = sigPath
	}
	return content
}

func validateRenderedDocx(path string) error {
	docxBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		text := string(content)
		if pos := strings.Index(text, "{{"); pos != -1 {
			return fmt.Errorf("unresolved template tokens near: %s", snippetAround(text, pos, 200))
		}
		return nil
	}

	return fmt.Errorf("document.xml not found in docx")
}

func snippetAround(text string, pos, maxLen int) string {
	start := pos - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
