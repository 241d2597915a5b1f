// Package store loads the static source documents a resume is assembled from:
// the reusable experience document and the personal info block.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrDocumentNotFound is returned when a source document path does not resolve.
var ErrDocumentNotFound = errors.New("source document not found")

const (
	projectsHeading = "## Projects"
	skillsHeading   = "## Skills"
)

// Experience is the experience document split at the Projects heading.
type Experience struct {
	Body     string
	Projects string
}

// Load reads a source document. The files are a deployment precondition, so a
// missing or unreadable file is fatal to the pipeline.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return "", fmt.Errorf("failed to read source document %s: %w", path, err)
	}
	return string(data), nil
}

// SplitExperience separates the experience document into the part before the
// Projects heading and the Projects section itself. The Projects section runs
// up to the Skills heading when one exists, otherwise to the end of the text.
// Without a Projects heading the whole document is the body.
func SplitExperience(text string) Experience {
	projectsStart := strings.Index(text, projectsHeading)
	if projectsStart == -1 {
		return Experience{Body: text}
	}

	projects := text[projectsStart:]
	if skillsStart := strings.Index(projects, skillsHeading); skillsStart != -1 {
		projects = projects[:skillsStart]
	}

	return Experience{
		Body:     text[:projectsStart],
		Projects: projects,
	}
}
