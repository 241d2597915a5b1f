// Package api exposes the resume pipeline to a submission driver over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aysaac/easyapply/internal/cleaner"
	"github.com/aysaac/easyapply/internal/ledger"
	"github.com/aysaac/easyapply/pkg/errors"
	"github.com/aysaac/easyapply/pkg/logger"
	"github.com/aysaac/easyapply/pkg/types"
)

// Resumes is the orchestrator surface the HTTP handlers call.
type Resumes interface {
	CreateResume(ctx context.Context, job, company, description string) (types.GeneratedResume, error)
	CreateDebugHTML(ctx context.Context, job, company, description string) (string, error)
	ListGenerated() ([]string, error)
}

type Server struct {
	port    int
	resumes Resumes
	ledger  *ledger.Ledger
}

func NewServer(port int, resumes Resumes, lgr *ledger.Ledger) *Server {
	return &Server{port: port, resumes: resumes, ledger: lgr}
}

func (s *Server) Start() error {
	chain := func(h http.HandlerFunc, methods ...string) http.HandlerFunc {
		return RequestID(Logger(Recover(CORS(MethodChecker(methods...)(h)))))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/resume", chain(s.handleCreateResume, http.MethodPost))
	mux.HandleFunc("/api/resume/debug-html", chain(s.handleDebugHTML, http.MethodPost))
	mux.HandleFunc("/api/resumes", chain(s.handleListResumes, http.MethodGet))

	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("starting API server", "port", s.port)
	return http.ListenAndServe(addr, mux)
}

type resumeRequest struct {
	JobID       string `json:"job_id,omitempty"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	// HTML is an optional raw posting page used when Description is empty.
	HTML string `json:"html,omitempty"`
}

func (req *resumeRequest) validate(r *http.Request) *errors.ApiError {
	requestID := logger.GetRequestID(r.Context())
	if req.JobTitle == "" {
		return errors.ErrBadRequest("No job title provided").WithRequestID(requestID)
	}
	if req.Company == "" {
		return errors.ErrBadRequest("No company provided").WithRequestID(requestID)
	}
	if req.Description == "" && req.HTML == "" {
		return errors.ErrBadRequest("No job description provided").WithRequestID(requestID)
	}
	if req.Description == "" {
		req.Description = cleaner.PostingText(req.HTML)
	}
	return nil
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(logger.GetRequestID(r.Context())))
		return
	}
	if apiErr := req.validate(r); apiErr != nil {
		RespondWithError(w, apiErr)
		return
	}

	artifact, err := s.resumes.CreateResume(r.Context(), req.JobTitle, req.Company, req.Description)
	if err != nil {
		RespondWithError(w, errors.ErrResumeGeneration(err.Error()).WithRequestID(logger.GetRequestID(r.Context())))
		return
	}

	if s.ledger != nil && req.JobID != "" {
		if err := s.ledger.Append(ledger.Entry{
			JobID:      req.JobID,
			Job:        req.JobTitle,
			Company:    req.Company,
			Attempted:  true,
			Result:     false,
			ResumePath: artifact.PDFPath,
		}); err != nil {
			slog.Warn("failed to record ledger entry", "job_id", req.JobID, "error", err)
		}
	}

	RespondWithJSON(w, http.StatusOK, artifact)
}

func (s *Server) handleDebugHTML(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(logger.GetRequestID(r.Context())))
		return
	}
	if apiErr := req.validate(r); apiErr != nil {
		RespondWithError(w, apiErr)
		return
	}

	path, err := s.resumes.CreateDebugHTML(r.Context(), req.JobTitle, req.Company, req.Description)
	if err != nil {
		RespondWithError(w, errors.ErrResumeGeneration(err.Error()).WithRequestID(logger.GetRequestID(r.Context())))
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"html_path": path})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	paths, err := s.resumes.ListGenerated()
	if err != nil {
		RespondWithError(w, errors.ErrInternalServer(err.Error()).WithRequestID(logger.GetRequestID(r.Context())))
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{"resumes": paths})
}
