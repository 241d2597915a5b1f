// Package render turns the assembled resume markdown into presentational HTML
// and applies the resume-specific structural rewrites: heading restyle,
// contact-line collapse, job and project header reformatting, page-break
// marking and the skills grid.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Personalization carries the candidate-specific values the rewrite rules
// match and substitute. Empty fields disable the corresponding rule.
type Personalization struct {
	// DisplayName is the exact text of the h1 the name-line rule matches.
	DisplayName string
	// SourceTitle is the h2 text expected directly under the name.
	SourceTitle string
	// AlternateTitle replaces SourceTitle in the merged heading.
	AlternateTitle string
	// ContactLine replaces the multi-line contact block wholesale.
	ContactLine string
}

// rule is one named rewrite step. Every rule is a no-op on input it does not
// match, and applying a rule to its own output must change nothing.
type rule struct {
	name  string
	apply func(html string) string
}

type Renderer struct {
	md    goldmark.Markdown
	rules []rule
}

// New builds a renderer with the rewrite rules in their required order. The
// job-header rule must run before the project-header rule: the project pattern
// is a strict subset and would otherwise consume job entries.
func New(p Personalization) *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
		rules: []rule{
			{"name-line-collapse", nameLineCollapse(p)},
			{"contact-line-collapse", contactLineCollapse(p)},
			{"job-header-reformat", jobHeaderReformat},
			{"project-header-reformat", projectHeaderReformat},
			{"projects-page-break", projectsPageBreak},
			{"skills-grid", skillsGrid},
		},
	}
}

// Render converts the composed markdown to HTML and applies the rewrite
// pipeline. Missing sections are tolerated: a rule that finds nothing to
// rewrite leaves the document alone.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return r.Restyle(buf.String()), nil
}

// Restyle applies the rewrite rules to already-converted HTML.
func (r *Renderer) Restyle(html string) string {
	for _, rule := range r.rules {
		html = rule.apply(html)
	}
	return html
}

// Rules returns the rule names in execution order.
func (r *Renderer) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.name
	}
	return names
}
