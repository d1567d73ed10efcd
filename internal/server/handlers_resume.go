package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/db"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/server/middleware"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// VersionReader loads stored resume snapshots and their timeline entries.
type VersionReader interface {
	GetResumeVersion(ctx context.Context, versionID uuid.UUID) (*db.ResumeVersion, error)
	GetMostRecentResumeVersion(ctx context.Context, userID uuid.UUID) (*db.ResumeVersion, error)
	GetMostRecentEntry(ctx context.Context, userID uuid.UUID) (*types.TimelineEntry, error)
}

// ResumeVersionResponse is one stored snapshot plus its score when a
// timeline entry references it.
type ResumeVersionResponse struct {
	ID        uuid.UUID      `json:"id"`
	Content   map[string]any `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	ATSScore  *float64       `json:"ats_score,omitempty"`
}

// handleCurrentResume returns the version the user's timeline points at,
// honoring undo position. Users with saved versions but no timeline (a
// partial commit) fall back to the newest snapshot.
func (s *Server) handleCurrentResume(w http.ResponseWriter, r *http.Request) {
	if s.versions == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "version store not configured")
		return
	}

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

	if snapshot.Current != nil {
		version, err := s.versions.GetResumeVersion(r.Context(), snapshot.Current.ResumeVersionID)
		if err != nil || version == nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load current version")
			return
		}
		score := snapshot.Current.ATSScore
		s.jsonResponse(w, http.StatusOK, ResumeVersionResponse{
			ID:        version.ID,
			Content:   version.Content,
			CreatedAt: version.CreatedAt,
			ATSScore:  &score,
		})
		return
	}

	version, err := s.versions.GetMostRecentResumeVersion(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load version")
		return
	}
	if version == nil {
		s.errorResponse(w, http.StatusNotFound, "no resume version saved")
		return
	}

	resp := ResumeVersionResponse{ID: version.ID, Content: version.Content, CreatedAt: version.CreatedAt}
	// A stray entry may still reference this snapshot; attach its score.
	if entry, err := s.versions.GetMostRecentEntry(r.Context(), userID); err == nil && entry != nil && entry.ResumeVersionID == version.ID {
		score := entry.ATSScore
		resp.ATSScore = &score
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleResumeVersion returns one stored snapshot by ID. Versions belonging
// to another user are indistinguishable from missing ones.
func (s *Server) handleResumeVersion(w http.ResponseWriter, r *http.Request) {
	if s.versions == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "version store not configured")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	versionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid version ID")
		return
	}

	version, err := s.versions.GetResumeVersion(r.Context(), versionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load version")
		return
	}
	if version == nil || version.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "resume version not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeVersionResponse{
		ID:        version.ID,
		Content:   version.Content,
		CreatedAt: version.CreatedAt,
	})
}
