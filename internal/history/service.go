package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Store is the durable persistence contract for timeline entries. The
// in-memory timeline is a cache over it, rebuilt per user in creation order
// on first access after a cold start.
type Store interface {
	CreateTimelineEntry(ctx context.Context, entry types.TimelineEntry) error
	ListTimelineEntries(ctx context.Context, userID uuid.UUID) ([]types.TimelineEntry, error)
	MarkEntryApplied(ctx context.Context, entryID uuid.UUID, appliedAt time.Time) error
	DeleteTimelineEntries(ctx context.Context, userID uuid.UUID) error
}

// Service owns every user's timeline. Mutating operations on one user are
// serialized by a per-user mutex; different users proceed in parallel.
type Service struct {
	store Store

	mu    sync.Mutex
	users map[uuid.UUID]*userTimeline
}

// userTimeline is one user's undo/redo state. past runs oldest to most
// recently applied; future holds undone entries, most recently undone first.
type userTimeline struct {
	mu      sync.Mutex
	loaded  bool
	past    []types.TimelineEntry
	current *types.TimelineEntry
	future  []types.TimelineEntry
}

// NewService creates a history service backed by the given durable store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		users: make(map[uuid.UUID]*userTimeline),
	}
}

// timeline returns the per-user state, creating it on first touch. The
// returned timeline must be used under its own mutex.
func (s *Service) timeline(userID uuid.UUID) *userTimeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	tl, ok := s.users[userID]
	if !ok {
		tl = &userTimeline{}
		s.users[userID] = tl
	}
	return tl
}

// load rebuilds the in-memory timeline from durable records in creation
// order. Called under the timeline's mutex.
func (s *Service) load(ctx context.Context, userID uuid.UUID, tl *userTimeline) error {
	if tl.loaded {
		return nil
	}
	entries, err := s.store.ListTimelineEntries(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to rebuild timeline for user %s: %w", userID, err)
	}
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		tl.past = append([]types.TimelineEntry{}, entries[:len(entries)-1]...)
		tl.current = &last
	}
	tl.future = nil
	tl.loaded = true
	return nil
}

// Save persists a new entry and makes it the current version. The prior
// current moves onto past and the future (redo) stack is cleared. A durable
// store failure is fatal for the operation and leaves memory untouched.
func (s *Service) Save(ctx context.Context, entry types.TimelineEntry) (types.TimelineEntry, error) {
	if entry.UserID == uuid.Nil {
		return types.TimelineEntry{}, fmt.Errorf("user id is required")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tl := s.timeline(entry.UserID)
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if err := s.load(ctx, entry.UserID, tl); err != nil {
		return types.TimelineEntry{}, err
	}
	if err := s.store.CreateTimelineEntry(ctx, entry); err != nil {
		return types.TimelineEntry{}, fmt.Errorf("failed to persist timeline entry: %w", err)
	}

	if tl.current != nil {
		tl.past = append(tl.past, *tl.current)
	}
	current := entry
	tl.current = &current
	tl.future = nil

	return entry, nil
}

// UndoResult carries the entry moved onto the future stack and the new
// current entry.
type UndoResult struct {
	Moved   types.TimelineEntry
	Current types.TimelineEntry
}

// Undo steps the timeline back one version. Returns ErrNothingToUndo when
// past is empty; entries are never lost, only moved.
func (s *Service) Undo(ctx context.Context, userID uuid.UUID) (*UndoResult, error) {
	tl := s.timeline(userID)
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if err := s.load(ctx, userID, tl); err != nil {
		return nil, err
	}
	if len(tl.past) == 0 {
		return nil, ErrNothingToUndo
	}

	moved := *tl.current
	tl.future = append([]types.TimelineEntry{moved}, tl.future...)

	newCurrent := tl.past[len(tl.past)-1]
	tl.past = tl.past[:len(tl.past)-1]
	tl.current = &newCurrent

	return &UndoResult{Moved: moved, Current: newCurrent}, nil
}

// RedoResult carries the entry restored as current.
type RedoResult struct {
	Current types.TimelineEntry
}

// Redo steps the timeline forward one version. Returns ErrNothingToRedo
// when future is empty.
func (s *Service) Redo(ctx context.Context, userID uuid.UUID) (*RedoResult, error) {
	tl := s.timeline(userID)
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if err := s.load(ctx, userID, tl); err != nil {
		return nil, err
	}
	if len(tl.future) == 0 {
		return nil, ErrNothingToRedo
	}

	restored := tl.future[0]
	tl.future = tl.future[1:]
	if tl.current != nil {
		tl.past = append(tl.past, *tl.current)
	}
	tl.current = &restored

	return &RedoResult{Current: restored}, nil
}

// GetTimeline returns a snapshot copy of the user's timeline.
func (s *Service) GetTimeline(ctx context.Context, userID uuid.UUID) (*types.TimelineSnapshot, error) {
	tl := s.timeline(userID)
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if err := s.load(ctx, userID, tl); err != nil {
		return nil, err
	}

	snapshot := &types.TimelineSnapshot{
		Past:   append([]types.TimelineEntry{}, tl.past...),
		Future: append([]types.TimelineEntry{}, tl.future...),
	}
	if tl.current != nil {
		current := *tl.current
		snapshot.Current = &current
	}
	return snapshot, nil
}

// ClearTimeline removes every entry for a user, durably and in memory.
func (s *Service) ClearTimeline(ctx context.Context, userID uuid.UUID) error {
	tl := s.timeline(userID)
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if err := s.store.DeleteTimelineEntries(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear timeline: %w", err)
	}
	tl.past = nil
	tl.current = nil
	tl.future = nil
	tl.loaded = true
	return nil
}

// LinkApply records when an entry's version was applied to the live resume.
func (s *Service) LinkApply(ctx context.Context, userID, entryID uuid.UUID, appliedAt time.Time) error {
	if err := s.store.MarkEntryApplied(ctx, entryID, appliedAt); err != nil {
		return fmt.Errorf("failed to link apply time: %w", err)
	}

	tl := s.timeline(userID)
	tl.mu.Lock()
	defer tl.mu.Unlock()

	update := func(entry *types.TimelineEntry) {
		if entry.ID == entryID {
			at := appliedAt
			entry.AppliedAt = &at
		}
	}
	for i := range tl.past {
		update(&tl.past[i])
	}
	if tl.current != nil {
		update(tl.current)
	}
	for i := range tl.future {
		update(&tl.future[i])
	}
	return nil
}
