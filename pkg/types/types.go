package types

import "time"

// =============== Job intake TYPES ===============

// JobContext is one application attempt's worth of posting data.
type JobContext struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// =============== synthesis TYPES ===============

// SynthesizedProfile is the completion service's contribution to a resume.
// Degraded marks the empty fallback used when the response could not be parsed.
type SynthesizedProfile struct {
	ProfileText string   `json:"profile"`
	Skills      []string `json:"skills"`
	Degraded    bool     `json:"-"`
}

// =============== artifact TYPES ===============

type GeneratedResume struct {
	MarkdownPath string    `json:"markdown_path"`
	PDFPath      string    `json:"pdf_path"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	CreatedAt    time.Time `json:"created_at"`
}
