// Package compose assembles the resume markdown from its fixed-order parts.
package compose

import (
	"strings"

	"github.com/aysaac/easyapply/pkg/types"
)

// Assemble builds the complete resume document. Section order is fixed:
// personal info, Profile, Experience, Skills, Projects. The Skills section is
// always the synthesized list, never whatever the experience document carries.
func Assemble(personalInfo string, profile types.SynthesizedProfile, experienceBody, projectsBody string) string {
	var b strings.Builder

	b.WriteString(personalInfo)
	b.WriteString(profileSection(profile.ProfileText))
	b.WriteString(experienceBody)
	b.WriteString(skillsSection(profile.Skills))
	b.WriteString(projectsBody)

	return strings.TrimSpace(b.String())
}

func profileSection(profileText string) string {
	return "\n## Profile\n\n" + profileText + "\n\n---\n\n"
}

// skillsSection renders one bullet per skill. Each skill is cut at its first
// parenthesis and trimmed, so "Python (3 yrs)" becomes "Python". Garbage
// entries pass through the same way; there is no validation here.
func skillsSection(skills []string) string {
	bullets := make([]string, 0, len(skills))
	for _, skill := range skills {
		name, _, _ := strings.Cut(skill, "(")
		bullets = append(bullets, "- "+strings.TrimSpace(name))
	}

	return "\n## Skills\n" + strings.Join(bullets, "\n") + "\n\n"
}
