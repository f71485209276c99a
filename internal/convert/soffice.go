package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const defaultTimeout = 120 * time.Second

// Output is what the converter process printed.
type Output struct {
	Stdout string
	Stderr string
}

// Converter turns the DOCX at inputPath into <base>.pdf inside outDir.
type Converter interface {
	Convert(ctx context.Context, inputPath, outDir string) (Output, error)
}

// SofficeConverter shells out to LibreOffice in headless mode.
type SofficeConverter struct {
	Path    string
	Timeout time.Duration
}

func NewSofficeConverter(path string, timeout time.Duration) *SofficeConverter {
	return &SofficeConverter{Path: path, Timeout: timeout}
}

func (c *SofficeConverter) Convert(ctx context.Context, inputPath, outDir string) (Output, error) {
	path := c.Path
	if path == "" {
		path = "soffice"
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--headless", "--convert-to", "pdf", "--outdir", outDir, inputPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("soffice timed out after %s: %w", timeout, ctx.Err())
	}
	if err != nil {
		return out, fmt.Errorf("soffice: %w", err)
	}
	return out, nil
}
