package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/agent"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/scoring"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/server/middleware"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// AgentRunRequest is the payload for one tailoring run.
type AgentRunRequest struct {
	Command        string         `json:"command" validate:"required"`
	Resume         map[string]any `json:"resume" validate:"required"`
	JobURL         string         `json:"job_url,omitempty" validate:"omitempty,url"`
	JobDescription string         `json:"job_description,omitempty"`
}

// handleAgentRun executes one agent run for the authenticated user.
func (s *Server) handleAgentRun(w http.ResponseWriter, r *http.Request) {
	if s.runtime == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "agent runtime not configured")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AgentRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := s.runtime.Run(r.Context(), agent.Request{
		UserID:         userID,
		Command:        req.Command,
		Resume:         req.Resume,
		JobURL:         req.JobURL,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		var authErr *agent.AuthorizationError
		if errors.As(err, &authErr) {
			s.errorResponse(w, http.StatusForbidden, authErr.Error())
			return
		}
		if result != nil {
			// Partial result with a failed commit: return both.
			s.jsonResponse(w, http.StatusAccepted, map[string]any{
				"result": result,
				"error":  err.Error(),
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// ScoreRequest asks for a compatibility score without editing anything.
type ScoreRequest struct {
	Resume         map[string]any `json:"resume" validate:"required"`
	JobDescription string         `json:"job_description" validate:"required"`
	QuickWins      bool           `json:"quick_wins,omitempty"`
}

// handleScore computes an ATS report for a resume against a job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "scoring engine not configured")
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resume, err := types.DecodeResume(req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume document")
		return
	}

	report := s.engine.Score(resume, req.JobDescription, scoring.Options{GenerateQuickWins: req.QuickWins})
	s.jsonResponse(w, http.StatusOK, report)
}
