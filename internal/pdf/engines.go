package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Engine renders an HTML document to a PDF file at outputPath.
type Engine interface {
	Render(ctx context.Context, html, outputPath string) error
}

// WkhtmltopdfEngine drives the wkhtmltopdf binary. Page geometry is passed as
// command options; the document stylesheet rides inside the HTML itself.
type WkhtmltopdfEngine struct {
	// BinPath overrides PATH lookup of the wkhtmltopdf executable.
	BinPath string
}

func (e *WkhtmltopdfEngine) Render(ctx context.Context, html, outputPath string) error {
	bin := e.BinPath
	if bin == "" {
		located, err := exec.LookPath("wkhtmltopdf")
		if err != nil {
			return fmt.Errorf("wkhtmltopdf binary not found: %w", err)
		}
		bin = located
	}
	if _, err := os.Stat(bin); err != nil {
		return fmt.Errorf("wkhtmltopdf binary not found at %s: %w", bin, err)
	}

	cmd := exec.CommandContext(ctx, bin,
		"--page-size", "A4",
		"--margin-top", "0.5in",
		"--margin-right", "0.5in",
		"--margin-bottom", "0.5in",
		"--margin-left", "0.5in",
		"--encoding", "UTF-8",
		"--no-outline",
		"--enable-local-file-access",
		"-", outputPath)
	cmd.Stdin = strings.NewReader(html)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("wkhtmltopdf failed: %w, output: %s", err, string(output))
	}

	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("expected PDF not found at %s: %w", outputPath, err)
	}
	return nil
}

// ChromeEngine prints the document through a headless Chrome tab.
type ChromeEngine struct {
	// ExecPath overrides Chrome binary discovery.
	ExecPath string
}

func (e *ChromeEngine) Render(ctx context.Context, html, outputPath string) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	runCtx, cancelRun := context.WithTimeout(tabCtx, 60*time.Second)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to stage HTML: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("chrome print failed: %w", err)
	}

	if err := os.WriteFile(outputPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
