package resume

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Detect returns the resume format based on file extension.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt", ".text":
		return FormatTXT, nil
	case ".md", ".markdown":
		return FormatMD, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// SupportedFormats returns all supported format names.
func SupportedFormats() []string {
	return []string{string(FormatPDF), string(FormatHTML), string(FormatTXT), string(FormatMD)}
}

// Extract reads path and returns its raw text. The result always starts with
// a markdown heading.
func (p *Pipeline) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	format, err := Detect(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %w", ErrExtraction, path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return "", fmt.Errorf("%w: file too large: %d bytes (max %d)", ErrExtraction, info.Size(), p.cfg.MaxFileSize)
	}

	p.logger.Debug("extracting resume", "path", path, "format", format)

	var text string
	switch format {
	case FormatPDF:
		text, err = p.extractPDF(path)
	case FormatHTML:
		text, err = p.extractHTML(path)
	case FormatTXT, FormatMD:
		text, err = extractText(path, p.cfg.MaxFileSize)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s (%s): %w", ErrExtraction, path, format, err)
	}

	if n := countNonSpace(text); n < p.cfg.MinContentChars {
		return "", fmt.Errorf("%w: %s (%s) yielded %d non-whitespace characters (min %d)",
			ErrExtraction, path, format, n, p.cfg.MinContentChars)
	}

	return ensureHeading(text), nil
}
