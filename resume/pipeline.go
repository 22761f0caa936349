// CLAUDE:SUMMARY Pipeline orchestrator: locate → extract → repair → classify → assemble, with markdown error documents.
// Package resume turns a resume file into a structured markdown document.
//
// Supported formats:
//   - .pdf  : full-document text layer, pdfcpu per-page fallback, artifact repair
//   - .html : readability content extraction converted to markdown
//   - .txt  : plain text, read verbatim
//   - .md   : markdown, read verbatim
//
// The extracted text goes through encoding/spacing repair, a per-line
// classifier (name, section header, contact, bullet, job title, body) and a
// markdown assembler.
//
// Usage:
//
//	pipe := resume.New(resume.Config{Dir: "."})
//	md := pipe.Resume(ctx) // never fails; errors become a markdown error document
package resume

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/microcosm-cc/bluemonday"
)

// Pipeline is the resume normalization engine. It holds only immutable
// configuration and compiled tables and is safe for concurrent use.
type Pipeline struct {
	cfg        Config
	logger     *slog.Logger
	repairer   *Repairer
	classifier *Classifier
	knownWords []string
	md         *converter.Converter
	sanitizer  *bluemonday.Policy
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:        cfg,
		logger:     cfg.Logger,
		repairer:   NewRepairer(cfg.PortfolioToken),
		classifier: NewClassifier(cfg.Location),
		knownWords: knownWordsFor(cfg.OwnerName),
		md:         newMarkdownConverter(),
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Classifier returns the pipeline's line classifier.
func (p *Pipeline) Classifier() *Classifier {
	return p.classifier
}

// Classify repairs raw text and classifies every resulting line.
func (p *Pipeline) Classify(raw string) []ClassifiedLine {
	return p.classifier.ClassifyLines(p.repairer.Repair(raw))
}

// Normalize turns extracted text into the final markdown document.
func (p *Pipeline) Normalize(raw string) string {
	return Assemble(p.Classify(raw), p.cfg.OwnerName)
}

// Render extracts path and normalizes it to markdown.
func (p *Pipeline) Render(ctx context.Context, path string) (string, error) {
	raw, err := p.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return p.Normalize(raw), nil
}

// Resume locates the resume in the configured directory and renders it.
// Failures are returned as a markdown error document, never as an error.
func (p *Pipeline) Resume(ctx context.Context) string {
	start := time.Now()

	path, err := Locate(p.cfg.Dir)
	if err != nil {
		p.logger.Warn("resume: no candidate file", "dir", p.cfg.Dir, "error", err)
		return ErrorDocument(err)
	}

	md, err := p.Render(ctx, path)
	if err != nil {
		p.logger.Error("resume: processing failed", "path", path, "error", err, "duration", time.Since(start))
		return ErrorDocument(err)
	}

	p.logger.Info("resume: rendered", "path", path, "bytes", len(md), "duration", time.Since(start))
	return md
}

// ErrorDocument renders err as a markdown error document.
func ErrorDocument(err error) string {
	var msg string
	switch {
	case errors.Is(err, ErrNoResumeFound):
		// Locate wraps the sentinel with the directory and candidate count.
		detail := strings.TrimPrefix(err.Error(), ErrNoResumeFound.Error())
		msg = "No resume file found" + detail + ". Place one of these files there: " +
			strings.Join(Candidates(), ", ")
	case errors.Is(err, ErrUnsupportedFormat):
		msg = "Unsupported file format: " + err.Error() +
			" (supported: " + strings.Join(SupportedFormats(), ", ") + ")"
	case errors.Is(err, ErrExtraction):
		msg = "Could not extract text: " + err.Error()
	default:
		msg = err.Error()
	}
	return ErrorHeading + "\n\n" + msg
}
