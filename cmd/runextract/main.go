// runextract converts a referral PDF (or reads plain text) and prints the
// extracted fields as JSON. Useful for tuning extraction patterns against
// real referral forms without touching the database.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/careflow-uk/fostermatch/internal/extract"
	"github.com/careflow-uk/fostermatch/internal/pdftext"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <referral.pdf|referral.txt>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var text string
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		conv := pdftext.NewExtractor(pdftext.Config{}, logger)
		res, err := conv.Extract(ctx, path)
		if err != nil {
			logger.Error("pdf conversion failed", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("converted pdf", "pages", res.Pages, "chars", len(res.Text))
		text = res.Text
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read file", "path", path, "error", err)
			os.Exit(1)
		}
		text = string(raw)
	}

	fields := extract.New().Extract(text)
	out, err := extract.FieldsJSON(fields)
	if err != nil {
		logger.Error("encode fields", "error", err)
		os.Exit(1)
	}
	if err := extract.ValidateFields(out); err != nil {
		logger.Warn("extracted fields failed schema validation", "error", err)
	}

	var pretty map[string]any
	_ = json.Unmarshal(out, &pretty)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(pretty)
}
