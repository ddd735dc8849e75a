// Package pdftext converts referral-form PDFs to plain text by shelling out
// to poppler's pdftotext. It is the binary-to-text collaborator in front of
// field extraction: when it fails, the whole ingestion attempt fails and the
// referral is routed to manual review, which is a different outcome from a
// field-level extraction miss.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	// Pdftotext is the binary name or path. Defaults to "pdftotext".
	Pdftotext string
}

type Result struct {
	Text     string
	Pages    int
	Duration time.Duration
	Warnings []string
}

// Extractor runs pdftotext for one file at a time.
type Extractor struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

func NewExtractor(cfg Config, log *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, log: log}
}

// NewExtractorWithRunner is for tests.
func NewExtractorWithRunner(cfg Config, r Runner, log *slog.Logger) *Extractor {
	e := NewExtractor(cfg, log)
	e.runner = r
	return e
}

// Extract converts the PDF at path to text.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("pdftotext: %w", err)
	}

	text := string(out)
	if strings.TrimSpace(text) == "" {
		return Result{Pages: pageCount(text), Duration: time.Since(start)},
			fmt.Errorf("pdftotext: no text layer in %s", path)
	}

	res := Result{
		Text:     text,
		Pages:    pageCount(text),
		Duration: time.Since(start),
	}
	e.log.Debug("pdftext.ok", "path", path, "pages", res.Pages, "chars", len(res.Text))
	return res, nil
}

// A form feed is pdftotext's default page separator.
func pageCount(text string) int {
	return 1 + strings.Count(text, "\f")
}
