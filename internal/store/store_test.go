package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "experience.md")
	if err := os.WriteFile(path, []byte("# Resume\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "# Resume\n" {
		t.Errorf("Load() = %q, want %q", got, "# Resume\n")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Load() error = %v, want ErrDocumentNotFound", err)
	}
}

func TestSplitExperience(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantBody     string
		wantProjects string
	}{
		{
			name:         "projects then skills",
			input:        "## Experience\njob one\n## Projects\nproj one\n## Skills\n- Go\n",
			wantBody:     "## Experience\njob one\n",
			wantProjects: "## Projects\nproj one\n",
		},
		{
			name:         "projects without skills",
			input:        "## Experience\njob one\n## Projects\nproj one\n",
			wantBody:     "## Experience\njob one\n",
			wantProjects: "## Projects\nproj one\n",
		},
		{
			name:         "no projects heading",
			input:        "## Experience\njob one\n",
			wantBody:     "## Experience\njob one\n",
			wantProjects: "",
		},
		{
			name:         "empty document",
			input:        "",
			wantBody:     "",
			wantProjects: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitExperience(tt.input)
			if got.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
			if got.Projects != tt.wantProjects {
				t.Errorf("Projects = %q, want %q", got.Projects, tt.wantProjects)
			}
		})
	}
}

// Body and Projects concatenate back to the original input minus the excised
// Skills tail.
func TestSplitExperienceReconstructs(t *testing.T) {
	input := "intro\n## Experience\na\nb\n## Projects\nc\nd\n## Skills\n- Go\n"
	got := SplitExperience(input)

	rebuilt := got.Body + got.Projects
	want := "intro\n## Experience\na\nb\n## Projects\nc\nd\n"
	if rebuilt != want {
		t.Errorf("reconstructed = %q, want %q", rebuilt, want)
	}
}
