package render

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	contactRe = regexp.MustCompile(`(?s)<p><strong>Location:</strong>(.*?)</p>`)
	// Job entries: "Title | Company" heading followed by a bold-only date
	// paragraph. The [^<] classes keep the pattern off already-rewritten
	// headings, whose content starts with a span.
	jobHeaderRe = regexp.MustCompile(`<h3>([^<]*?)\s*\|\s*([^<]*?)</h3>\s*<p><strong>([^<]*?)</strong></p>`)
	// Project entries: same shape without the pipe separator.
	projectHeaderRe = regexp.MustCompile(`<h3>([^<]*?)</h3>\s*<p><strong>([^<]*?)</strong></p>`)
	skillsListRe    = regexp.MustCompile(`(?s)<h2>Skills</h2>\s*<ul>(.*?)</ul>`)
	listItemRe      = regexp.MustCompile(`<li>(.*?)</li>`)
)

func nameLineCollapse(p Personalization) func(string) string {
	if p.DisplayName == "" || p.SourceTitle == "" || p.AlternateTitle == "" {
		return noop
	}

	re := regexp.MustCompile(
		`<h1>` + regexp.QuoteMeta(p.DisplayName) + `</h1>\s*<h2>` + regexp.QuoteMeta(p.SourceTitle) + `</h2>`)
	merged := fmt.Sprintf("<h1>%s, %s</h1>", p.DisplayName, p.AlternateTitle)

	return func(html string) string {
		return re.ReplaceAllLiteralString(html, merged)
	}
}

func contactLineCollapse(p Personalization) func(string) string {
	if p.ContactLine == "" {
		return noop
	}

	line := fmt.Sprintf("<p>%s</p>", p.ContactLine)
	return func(html string) string {
		return contactRe.ReplaceAllLiteralString(html, line)
	}
}

func jobHeaderReformat(html string) string {
	return jobHeaderRe.ReplaceAllStringFunc(html, func(m string) string {
		parts := jobHeaderRe.FindStringSubmatch(m)
		title := strings.TrimSpace(parts[1])
		company := strings.TrimSpace(parts[2])
		dates := strings.TrimSpace(parts[3])
		return fmt.Sprintf(`<h3><span class="job-info"><span class="job-title">%s</span>, <span class="company">%s</span></span><span class="date-range">(%s)</span></h3>`,
			title, company, dates)
	})
}

func projectHeaderReformat(html string) string {
	return projectHeaderRe.ReplaceAllStringFunc(html, func(m string) string {
		parts := projectHeaderRe.FindStringSubmatch(m)
		title := strings.TrimSpace(parts[1])
		dates := strings.TrimSpace(parts[2])
		return fmt.Sprintf(`<h3><span class="job-info"><span class="job-title">%s</span></span><span class="date-range">(%s)</span></h3>`,
			title, dates)
	})
}

func projectsPageBreak(html string) string {
	return strings.ReplaceAll(html,
		"<h2>Projects</h2>",
		`<h2 class="projects-section">Projects</h2>`)
}

const skillColumns = 3

// skillsGrid re-flows the Skills bullet list into rows of exactly three
// cells, padding the last row with empty cells. Item order is preserved
// left to right, top to bottom.
func skillsGrid(html string) string {
	return skillsListRe.ReplaceAllStringFunc(html, func(m string) string {
		items := listItemRe.FindAllStringSubmatch(skillsListRe.FindStringSubmatch(m)[1], -1)

		var rows strings.Builder
		for i := 0; i < len(items); i += skillColumns {
			rows.WriteString(`<div class="skills-row">`)
			for j := i; j < i+skillColumns; j++ {
				if j < len(items) {
					rows.WriteString(fmt.Sprintf(`<div class="skill-item">&bull; %s</div>`, items[j][1]))
				} else {
					rows.WriteString(`<div class="skill-item"></div>`)
				}
			}
			rows.WriteString("</div>\n")
		}

		return "<h2>Skills</h2>\n<div class=\"skills-grid\">\n" + rows.String() + "</div>"
	})
}

func noop(html string) string { return html }
