// Package pdf materializes a styled resume document as a PDF file, degrading
// through a fallback engine and finally to a plain HTML artifact so the
// pipeline always yields a file.
package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Materializer renders documents with a primary engine, falling back to a
// second engine and then to an HTML dump.
type Materializer struct {
	primary         Engine
	fallback        Engine
	disableFallback bool
}

func NewMaterializer(primary, fallback Engine, disableFallback bool) *Materializer {
	return &Materializer{
		primary:         primary,
		fallback:        fallback,
		disableFallback: disableFallback,
	}
}

// Materialize writes the document to outputPath and returns the path of
// whatever file was actually produced: outputPath on success through either
// engine, or a sibling .html path when both engines fail. Only writing that
// last-resort HTML file can error.
func (m *Materializer) Materialize(ctx context.Context, body, outputPath string) (string, error) {
	primaryErr := m.primary.Render(ctx, documentShell(body, resumeStyle), outputPath)
	if primaryErr == nil {
		slog.Info("PDF created", "path", outputPath)
		return outputPath, nil
	}
	slog.Warn("primary PDF engine failed", "error", primaryErr, "path", outputPath)

	if !m.disableFallback && m.fallback != nil {
		fallbackErr := m.fallback.Render(ctx, documentShell(body, pageRule+resumeStyle), outputPath)
		if fallbackErr == nil {
			slog.Info("PDF created via fallback engine", "path", outputPath)
			return outputPath, nil
		}
		slog.Warn("fallback PDF engine failed", "error", fallbackErr, "path", outputPath)
	}

	htmlPath := strings.TrimSuffix(outputPath, ".pdf") + ".html"
	if err := os.WriteFile(htmlPath, []byte(documentShell(body, resumeStyle)), 0o644); err != nil {
		return "", fmt.Errorf("failed to persist HTML after render failures: %w", err)
	}
	slog.Warn("all PDF engines failed, persisted HTML instead", "path", htmlPath)
	return htmlPath, nil
}

// SaveDebugHTML writes the full document shell to path. This is a deliberate
// operation, not crash recovery.
func (m *Materializer) SaveDebugHTML(body, path string) (string, error) {
	if err := os.WriteFile(path, []byte(documentShell(body, resumeStyle)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write debug HTML: %w", err)
	}
	return path, nil
}

func documentShell(body, style string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>%s</style>
</head>
<body>
%s
</body>
</html>
`, style, body)
}
