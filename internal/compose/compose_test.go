package compose

import (
	"strings"
	"testing"

	"github.com/aysaac/easyapply/pkg/types"
)

func TestAssembleSectionOrder(t *testing.T) {
	doc := Assemble(
		"# Jane Doe\n## AI Research Engineer\n",
		types.SynthesizedProfile{ProfileText: "Experienced ML engineer.", Skills: []string{"Python (3y)", "Go"}},
		"## Employment History\n### Engineer | Acme\n",
		"## Projects\n### Thing\n",
	)

	order := []string{
		"# Jane Doe",
		"## Profile",
		"Experienced ML engineer.",
		"---",
		"## Employment History",
		"## Skills",
		"- Python",
		"- Go",
		"## Projects",
	}

	pos := -1
	for _, marker := range order {
		idx := strings.Index(doc, marker)
		if idx == -1 {
			t.Fatalf("document missing %q:\n%s", marker, doc)
		}
		if idx < pos {
			t.Errorf("%q appears out of order", marker)
		}
		pos = idx
	}

	if strings.Count(doc, "## Profile") != 1 {
		t.Errorf("want exactly one Profile section")
	}
}

func TestSkillTruncation(t *testing.T) {
	tests := []struct {
		skill string
		want  string
	}{
		{"Docker (2 yrs)", "- Docker"},
		{"Python (3 yrs)", "- Python"},
		{"Go", "- Go"},
		{"  padded  ", "- padded"},
		{"(weird", "- "},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			doc := Assemble("", types.SynthesizedProfile{Skills: []string{tt.skill}}, "", "## Projects\n")
			if !strings.Contains(doc, tt.want+"\n") {
				t.Errorf("Assemble() skills = %q, want bullet %q", doc, tt.want)
			}
		})
	}
}

func TestAssembleEmptyProfile(t *testing.T) {
	doc := Assemble("# Jane\n", types.SynthesizedProfile{Degraded: true, Skills: []string{}}, "## Experience\n", "")

	if !strings.Contains(doc, "## Profile") {
		t.Error("Profile heading missing for degraded profile")
	}
	if !strings.Contains(doc, "## Skills") {
		t.Error("Skills heading missing for degraded profile")
	}
}
