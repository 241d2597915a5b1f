package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aysaac/easyapply/internal/render"
	"github.com/aysaac/easyapply/pkg/types"
)

type fakeSynth struct {
	profile types.SynthesizedProfile
	err     error
}

func (f *fakeSynth) Synthesize(_ context.Context, _ types.JobContext, _ string) (types.SynthesizedProfile, error) {
	return f.profile, f.err
}

type fakeMaterializer struct {
	failPDF bool
}

func (f *fakeMaterializer) Materialize(_ context.Context, body, outputPath string) (string, error) {
	if f.failPDF {
		htmlPath := strings.TrimSuffix(outputPath, ".pdf") + ".html"
		if err := os.WriteFile(htmlPath, []byte(body), 0o644); err != nil {
			return "", err
		}
		return htmlPath, nil
	}
	if err := os.WriteFile(outputPath, []byte("%PDF-stub"), 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (f *fakeMaterializer) SaveDebugHTML(body, path string) (string, error) {
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

const experienceDoc = `# Jane Doe
## AI Research Engineer

**Location:** Springfield

## Employment History

### Engineer | Acme

**Jan 2020 - Present**

- built things

## Projects

### Side Project

**2023**

- shipped it

## Skills
- stale skill
`

func newTestManager(t *testing.T, synth ProfileSynthesizer, mat Materializer) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	expPath := filepath.Join(dir, "experience.md")
	infoPath := filepath.Join(dir, "personal_info.md")
	if err := os.WriteFile(expPath, []byte(experienceDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(infoPath, []byte("# Jane Doe\n## AI Research Engineer\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	m, err := NewManager(expPath, infoPath, outDir, synth, render.New(render.Personalization{}), mat)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m, outDir
}

func TestCreateResumeEndToEnd(t *testing.T) {
	synth := &fakeSynth{profile: types.SynthesizedProfile{
		ProfileText: "Experienced ML engineer.",
		Skills:      []string{"Python (3y)", "Go"},
	}}
	m, outDir := newTestManager(t, synth, &fakeMaterializer{})

	artifact, err := m.CreateResume(context.Background(), "ML Engineer", "Acme", "job desc")
	if err != nil {
		t.Fatalf("CreateResume() error = %v", err)
	}

	if !strings.HasSuffix(artifact.PDFPath, ".pdf") {
		t.Errorf("PDFPath = %q", artifact.PDFPath)
	}
	if filepath.Dir(artifact.PDFPath) != outDir {
		t.Errorf("artifact outside output dir: %q", artifact.PDFPath)
	}

	md, err := os.ReadFile(artifact.MarkdownPath)
	if err != nil {
		t.Fatalf("markdown sibling missing: %v", err)
	}
	content := string(md)

	if strings.Count(content, "## Profile") != 1 {
		t.Errorf("want exactly one Profile section:\n%s", content)
	}
	if !strings.Contains(content, "Experienced ML engineer.") {
		t.Error("profile sentence missing")
	}
	pythonIdx := strings.Index(content, "- Python")
	goIdx := strings.Index(content, "- Go")
	if pythonIdx == -1 || goIdx == -1 || goIdx < pythonIdx {
		t.Errorf("skills bullets wrong or out of order:\n%s", content)
	}
	if strings.Contains(content, "stale skill") {
		t.Error("static skills section leaked into composed document")
	}
}

func TestCreateResumeDegradedProfile(t *testing.T) {
	synth := &fakeSynth{profile: types.SynthesizedProfile{Skills: []string{}, Degraded: true}}
	m, _ := newTestManager(t, synth, &fakeMaterializer{})

	artifact, err := m.CreateResume(context.Background(), "ML Engineer", "Acme", "desc")
	if err != nil {
		t.Fatalf("CreateResume() error = %v, want degraded success", err)
	}
	if artifact.PDFPath == "" {
		t.Error("no artifact produced for degraded profile")
	}
}

func TestCreateResumeSynthesisErrorPropagates(t *testing.T) {
	synth := &fakeSynth{err: errors.New("service down")}
	m, outDir := newTestManager(t, synth, &fakeMaterializer{})

	if _, err := m.CreateResume(context.Background(), "ML Engineer", "Acme", "desc"); err == nil {
		t.Fatal("CreateResume() error = nil, want propagated synthesis error")
	}

	entries, _ := os.ReadDir(outDir)
	if len(entries) != 0 {
		t.Errorf("artifacts written despite synthesis failure: %v", entries)
	}
}

func TestCreateResumeKeepsMarkdownOnRenderDegrade(t *testing.T) {
	synth := &fakeSynth{profile: types.SynthesizedProfile{ProfileText: "p"}}
	m, _ := newTestManager(t, synth, &fakeMaterializer{failPDF: true})

	artifact, err := m.CreateResume(context.Background(), "ML Engineer", "Acme", "desc")
	if err != nil {
		t.Fatalf("CreateResume() error = %v", err)
	}
	if !strings.HasSuffix(artifact.PDFPath, ".html") {
		t.Errorf("PDFPath = %q, want .html degrade", artifact.PDFPath)
	}
	if _, err := os.Stat(artifact.MarkdownPath); err != nil {
		t.Errorf("markdown sibling missing after degrade: %v", err)
	}
}

func TestCreateResumeWithCustomOutput(t *testing.T) {
	synth := &fakeSynth{profile: types.SynthesizedProfile{ProfileText: "p"}}
	m, outDir := newTestManager(t, synth, &fakeMaterializer{})

	artifact, err := m.CreateResumeWithCustomOutput(context.Background(), "ML Engineer", "Acme", "desc", "custom_name")
	if err != nil {
		t.Fatal(err)
	}
	if artifact.PDFPath != filepath.Join(outDir, "custom_name.pdf") {
		t.Errorf("PDFPath = %q", artifact.PDFPath)
	}
	if artifact.MarkdownPath != filepath.Join(outDir, "custom_name.md") {
		t.Errorf("MarkdownPath = %q", artifact.MarkdownPath)
	}
}

func TestCreateDebugHTML(t *testing.T) {
	synth := &fakeSynth{profile: types.SynthesizedProfile{ProfileText: "p"}}
	m, _ := newTestManager(t, synth, &fakeMaterializer{})

	path, err := m.CreateDebugHTML(context.Background(), "ML Engineer", "Acme", "desc")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "_debug.html") {
		t.Errorf("path = %q, want *_debug.html", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("debug HTML not written: %v", err)
	}
}

func TestListGenerated(t *testing.T) {
	synth := &fakeSynth{profile: types.SynthesizedProfile{ProfileText: "p"}}
	m, outDir := newTestManager(t, synth, &fakeMaterializer{})

	for _, name := range []string{"a.pdf", "b.pdf", "c.md"} {
		if err := os.WriteFile(filepath.Join(outDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := m.ListGenerated()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("ListGenerated() = %v, want 2 PDFs", got)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Senior ML Engineer / AI", "Senior_ML_Engineer___AI"},
		{`a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"  lots   of\tspace  ", "lots_of_space"},
		{"plain", "plain"},
		{strings.Repeat("x", 80), strings.Repeat("x", 50)},
		{strings.Repeat("é", 80), strings.Repeat("é", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.ContainsAny(got, invalidFileChars+" ") {
				t.Errorf("sanitized name still has invalid characters: %q", got)
			}
			if utf8.RuneCountInString(got) > 50 {
				t.Errorf("sanitized name too long: %d runes", utf8.RuneCountInString(got))
			}
			if !utf8.ValidString(got) {
				t.Errorf("sanitized name is not valid UTF-8: %q", got)
			}
		})
	}
}
