// Package resume orchestrates the full pipeline: load source documents,
// synthesize the job-specific profile, assemble the markdown, render it and
// materialize the PDF artifact.
package resume

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aysaac/easyapply/internal/compose"
	"github.com/aysaac/easyapply/internal/render"
	"github.com/aysaac/easyapply/internal/store"
	"github.com/aysaac/easyapply/pkg/types"
)

const timestampLayout = "20060102_150405"

// ProfileSynthesizer produces the tailored profile for one job.
type ProfileSynthesizer interface {
	Synthesize(ctx context.Context, job types.JobContext, experienceText string) (types.SynthesizedProfile, error)
}

// Materializer turns styled HTML into a file artifact.
type Materializer interface {
	Materialize(ctx context.Context, body, outputPath string) (string, error)
	SaveDebugHTML(body, path string) (string, error)
}

// Manager is the single entry point the submission drivers call. Source
// documents are read once at construction.
type Manager struct {
	synth        ProfileSynthesizer
	renderer     *render.Renderer
	materializer Materializer
	outputDir    string

	experienceText string
	experience     store.Experience
	personalInfo   string
}

func NewManager(experienceFile, personalFile, outputDir string, synth ProfileSynthesizer, renderer *render.Renderer, mat Materializer) (*Manager, error) {
	experienceText, err := store.Load(experienceFile)
	if err != nil {
		return nil, err
	}
	personalInfo, err := store.Load(personalFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	return &Manager{
		synth:          synth,
		renderer:       renderer,
		materializer:   mat,
		outputDir:      outputDir,
		experienceText: experienceText,
		experience:     store.SplitExperience(experienceText),
		personalInfo:   personalInfo,
	}, nil
}

// CreateResume generates a tailored resume for the job and returns the
// produced artifact. The markdown sibling is written before rendering starts
// and is left in place even when rendering fails.
func (m *Manager) CreateResume(ctx context.Context, job, company, description string) (types.GeneratedResume, error) {
	now := time.Now()
	base := fmt.Sprintf("%s_%s_%s",
		sanitizeFileName(job), sanitizeFileName(company), now.Format(timestampLayout))
	return m.create(ctx, job, company, description, base, now)
}

// CreateResumeWithCustomOutput runs the same pipeline with a caller-supplied
// base name instead of the sanitized job/company/timestamp one.
func (m *Manager) CreateResumeWithCustomOutput(ctx context.Context, job, company, description, baseName string) (types.GeneratedResume, error) {
	return m.create(ctx, job, company, description, baseName, time.Now())
}

func (m *Manager) create(ctx context.Context, job, company, description, baseName string, now time.Time) (types.GeneratedResume, error) {
	slog.Info("generating resume content", "job", job, "company", company)

	markdown, err := m.generateContent(ctx, job, company, description)
	if err != nil {
		slog.Error("resume content generation failed", "job", job, "company", company, "error", err)
		return types.GeneratedResume{}, err
	}

	markdownPath := filepath.Join(m.outputDir, baseName+".md")
	if err := os.WriteFile(markdownPath, []byte(markdown), 0o644); err != nil {
		slog.Error("failed to save resume markdown", "job", job, "company", company, "error", err)
		return types.GeneratedResume{}, fmt.Errorf("failed to save resume markdown: %w", err)
	}

	styled, err := m.renderer.Render(markdown)
	if err != nil {
		slog.Error("resume rendering failed", "job", job, "company", company, "error", err)
		return types.GeneratedResume{}, err
	}

	pdfPath := filepath.Join(m.outputDir, baseName+".pdf")
	finalPath, err := m.materializer.Materialize(ctx, styled, pdfPath)
	if err != nil {
		slog.Error("resume materialization failed", "job", job, "company", company, "error", err)
		return types.GeneratedResume{}, err
	}

	slog.Info("resume generated", "job", job, "company", company, "path", finalPath)
	return types.GeneratedResume{
		MarkdownPath: markdownPath,
		PDFPath:      finalPath,
		JobTitle:     job,
		Company:      company,
		CreatedAt:    now,
	}, nil
}

// CreateDebugHTML renders the resume through the layout pipeline and writes
// the HTML shell directly, bypassing PDF rendering entirely.
func (m *Manager) CreateDebugHTML(ctx context.Context, job, company, description string) (string, error) {
	markdown, err := m.generateContent(ctx, job, company, description)
	if err != nil {
		slog.Error("resume content generation failed", "job", job, "company", company, "error", err)
		return "", err
	}

	styled, err := m.renderer.Render(markdown)
	if err != nil {
		slog.Error("resume rendering failed", "job", job, "company", company, "error", err)
		return "", err
	}

	base := fmt.Sprintf("%s_%s_%s_debug.html",
		sanitizeFileName(job), sanitizeFileName(company), time.Now().Format(timestampLayout))
	path, err := m.materializer.SaveDebugHTML(styled, filepath.Join(m.outputDir, base))
	if err != nil {
		slog.Error("debug HTML generation failed", "job", job, "company", company, "error", err)
		return "", err
	}

	slog.Info("debug HTML generated", "path", path)
	return path, nil
}

func (m *Manager) generateContent(ctx context.Context, job, company, description string) (string, error) {
	profile, err := m.synth.Synthesize(ctx, types.JobContext{
		JobTitle:    job,
		Company:     company,
		Description: description,
	}, m.experienceText)
	if err != nil {
		return "", err
	}

	return compose.Assemble(m.personalInfo, profile, m.experience.Body, m.experience.Projects), nil
}

// ListGenerated returns the PDF artifacts in the output directory, newest
// first.
func (m *Manager) ListGenerated() ([]string, error) {
	entries, err := os.ReadDir(m.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var pdfs []candidate
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		pdfs = append(pdfs, candidate{filepath.Join(m.outputDir, entry.Name()), info.ModTime()})
	}

	sort.Slice(pdfs, func(i, j int) bool { return pdfs[i].modTime.After(pdfs[j].modTime) })

	paths := make([]string, len(pdfs))
	for i, c := range pdfs {
		paths[i] = c.path
	}
	return paths, nil
}

// OutputDir is the directory artifacts are written to.
func (m *Manager) OutputDir() string {
	return m.outputDir
}

var invalidFileChars = `<>:"/\|?*`

// sanitizeFileName makes a string safe to use as a file name: invalid
// characters become underscores, whitespace runs collapse to single
// underscores and the result is capped at 50 characters.
func sanitizeFileName(name string) string {
	sanitized := name
	for _, c := range invalidFileChars {
		sanitized = strings.ReplaceAll(sanitized, string(c), "_")
	}

	sanitized = strings.Join(strings.Fields(sanitized), "_")

	// Cap on runes so a multi-byte character at the boundary is dropped
	// whole instead of leaving invalid UTF-8 in the name.
	if runes := []rune(sanitized); len(runes) > 50 {
		sanitized = string(runes[:50])
	}
	return sanitized
}
