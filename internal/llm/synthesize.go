package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aysaac/easyapply/internal/cleaner"
	"github.com/aysaac/easyapply/pkg/types"
)

// CompletionService is the external text-generation collaborator.
type CompletionService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const maxSkills = 12

const profileInstructions = `Create a profile for the following job using information from this applicant given some job posting.
Break down the key qualifications, technical and soft skills, relevant experience, and project work that would make a candidate stand out. Highlight essential industry certifications, domain expertise, and the impact of past roles in shaping their suitability.
Additionally, evaluate leadership qualities, problem-solving abilities, and adaptability to evolving industry trends. If applicable, consider cultural fit, teamwork, and communication skills required for success in the organization.
First list all the abilities that both the candidate and the job posting have in common and some of the skills that would be nice to have.
Before writing the profile, provide a structured assessment framework what an exceptional profile should look like, red flags to avoid, and how to differentiate between a good candidate and a perfect hire. Ensure your response is comprehensive, strategic, and aligned with real-world hiring best practices.
The profile must be written in one row and must be in english and must be written from the perspective of the candidate.
Do not mention the job posting or the organization, just the candidate's qualifications and skills that would be relevant for the position. If a skill is relevant but there is no project or experience with it you can mention it in the skills portion but not in the profile.
You must also return a list of the most relevant skills that the candidate has for this job, focus on the skills that are required or wanted for the job posting and then some skills that might be relevant.
Respond in the following format with the max number of skills that you want to include in the profile being 12:
` + "```json" + `
{
"profile": "profile here"
"skills": ["skill1", "skill2", "skill3"]
}
` + "```" + `

`

// Synthesizer produces the job-specific profile paragraph and skill list.
type Synthesizer struct {
	svc CompletionService
	rec Recorder
}

func NewSynthesizer(svc CompletionService, rec Recorder) *Synthesizer {
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Synthesizer{svc: svc, rec: rec}
}

// Synthesize asks the completion service for a tailored profile. A response
// that cannot be parsed degrades to an empty profile instead of failing, so
// downstream assembly always has something to work with. Only a failed
// completion call is an error.
func (s *Synthesizer) Synthesize(ctx context.Context, job types.JobContext, experienceText string) (types.SynthesizedProfile, error) {
	systemPrompt := profileInstructions + experienceText
	userPrompt := fmt.Sprintf("Job Title: %s\nCompany: %s\nJob Description: %s\n",
		job.JobTitle, job.Company, job.Description)

	raw, err := s.svc.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return types.SynthesizedProfile{}, fmt.Errorf("profile synthesis failed: %w", err)
	}

	profile := parseProfile(raw)
	if profile.Degraded {
		slog.Warn("completion response could not be parsed, continuing with empty profile",
			"job", job.JobTitle, "company", job.Company)
	}

	s.rec.Record("generate_job_profile",
		map[string]any{"job_title": job.JobTitle, "company": job.Company, "job_description": job.Description},
		map[string]any{"profile": profile.ProfileText, "skills": profile.Skills, "degraded": profile.Degraded})

	return profile, nil
}

// parseProfile extracts the {profile, skills} object from free-form response
// text: everything between the first '{' and the last '}'. Anything that does
// not decode yields the empty degraded profile.
func parseProfile(raw string) types.SynthesizedProfile {
	degraded := types.SynthesizedProfile{Skills: []string{}, Degraded: true}

	text := cleaner.StripFences(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return degraded
	}

	var decoded struct {
		Profile string   `json:"profile"`
		Skills  []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &decoded); err != nil {
		return degraded
	}

	skills := decoded.Skills
	if skills == nil {
		skills = []string{}
	}
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	return types.SynthesizedProfile{
		ProfileText: decoded.Profile,
		Skills:      skills,
	}
}
