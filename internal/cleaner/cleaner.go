// Package cleaner normalizes the two messy text inputs the pipeline sees: raw
// job-posting HTML handed over by a submission driver, and completion service
// output wrapped in markdown code fences.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PostingText reduces job-posting HTML to readable plain text. Page chrome is
// dropped and the remaining text blocks are joined with blank lines.
func PostingText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return stripTags(html)
	}

	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	if body := strings.TrimSpace(doc.Find("body").Text()); body != "" {
		return collapseSpace(body)
	}
	return collapseSpace(doc.Text())
}

// StripFences removes a surrounding markdown code fence from completion
// output, if one is present.
func StripFences(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := strings.Index(response, "```")
	rest := response[start+3:]
	if nl := strings.Index(rest, "\n"); nl != -1 && nl < 10 {
		// skip a language tag like ```json
		rest = rest[nl+1:]
		start = len(response) - len(rest)
	} else {
		start += 3
	}

	end := strings.LastIndex(response, "```")
	if end > start {
		return strings.TrimSpace(response[start:end])
	}
	return strings.TrimSpace(response)
}

var (
	tagRe   = regexp.MustCompile("<[^>]*>")
	spaceRe = regexp.MustCompile(`\s+`)
)

func stripTags(html string) string {
	return collapseSpace(tagRe.ReplaceAllString(html, " "))
}

func collapseSpace(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
