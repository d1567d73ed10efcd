package server

import (
	"errors"
	"net/http"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/history"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/server/middleware"
)

// handleUndo steps the authenticated user's timeline back one version.
func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := s.history.Undo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to undo")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRedo steps the authenticated user's timeline forward one version.
func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := s.history.Redo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, history.ErrNothingToRedo) {
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to redo")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleTimeline returns the authenticated user's full undo/redo snapshot.
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snapshot, err := s.history.GetTimeline(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load timeline")
		return
	}

	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleClearTimeline removes every saved version for the user.
func (s *Server) handleClearTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.history.ClearTimeline(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to clear timeline")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
