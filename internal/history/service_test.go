package history

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// memoryStore is an in-memory Store for tests.
type memoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]types.TimelineEntry
	failOn  string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[uuid.UUID][]types.TimelineEntry)}
}

func (m *memoryStore) CreateTimelineEntry(_ context.Context, entry types.TimelineEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "create" {
		return errors.New("store unavailable")
	}
	m.entries[entry.UserID] = append(m.entries[entry.UserID], entry)
	return nil
}

func (m *memoryStore) ListTimelineEntries(_ context.Context, userID uuid.UUID) ([]types.TimelineEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "list" {
		return nil, errors.New("store unavailable")
	}
	return append([]types.TimelineEntry{}, m.entries[userID]...), nil
}

func (m *memoryStore) MarkEntryApplied(_ context.Context, entryID uuid.UUID, appliedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for userID := range m.entries {
		for i := range m.entries[userID] {
			if m.entries[userID][i].ID == entryID {
				at := appliedAt
				m.entries[userID][i].AppliedAt = &at
			}
		}
	}
	return nil
}

func (m *memoryStore) DeleteTimelineEntries(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}

func entryFor(userID uuid.UUID, score float64) types.TimelineEntry {
	return types.TimelineEntry{
		UserID:          userID,
		ResumeVersionID: uuid.New(),
		ATSScore:        score,
	}
}

func TestSave_ClearsFuture(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	_, err := svc.Save(ctx, entryFor(userID, 50))
	require.NoError(t, err)
	_, err = svc.Save(ctx, entryFor(userID, 60))
	require.NoError(t, err)

	_, err = svc.Undo(ctx, userID)
	require.NoError(t, err)

	snapshot, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Future, 1)

	_, err = svc.Save(ctx, entryFor(userID, 70))
	require.NoError(t, err)

	snapshot, err = svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Future, "save always clears future")
	assert.InDelta(t, 70, snapshot.Current.ATSScore, 1e-9)
}

func TestUndoRedo_EndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	v1, err := svc.Save(ctx, entryFor(userID, 40))
	require.NoError(t, err)
	v2, err := svc.Save(ctx, entryFor(userID, 55))
	require.NoError(t, err)

	undone, err := svc.Undo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, v1.ResumeVersionID, undone.Current.ResumeVersionID)
	assert.Equal(t, v2.ResumeVersionID, undone.Moved.ResumeVersionID)

	snapshot, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Future, 1)
	assert.Equal(t, v2.ID, snapshot.Future[0].ID)

	redone, err := svc.Redo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, v2.ResumeVersionID, redone.Current.ResumeVersionID)

	snapshot, err = svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Future)
	require.Len(t, snapshot.Past, 1)
	assert.Equal(t, v1.ID, snapshot.Past[0].ID)
}

func TestUndo_RoundTripRestoresCurrent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	_, err := svc.Save(ctx, entryFor(userID, 40))
	require.NoError(t, err)
	saved, err := svc.Save(ctx, entryFor(userID, 55))
	require.NoError(t, err)

	before, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)

	_, err = svc.Undo(ctx, userID)
	require.NoError(t, err)
	_, err = svc.Redo(ctx, userID)
	require.NoError(t, err)

	after, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, before.Current.ID, after.Current.ID)
	assert.Equal(t, saved.ID, after.Current.ID)
}

func TestUndo_EmptyPastIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	_, err := svc.Undo(ctx, userID)
	assert.ErrorIs(t, err, ErrNothingToUndo)

	_, err = svc.Save(ctx, entryFor(userID, 40))
	require.NoError(t, err)

	// A single saved version has no past to return to.
	_, err = svc.Undo(ctx, userID)
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestRedo_EmptyFutureIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	_, err := svc.Redo(ctx, userID)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestColdStart_RebuildsFromDurableStore(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	userID := uuid.New()

	first := NewService(store)
	_, err := first.Save(ctx, entryFor(userID, 40))
	require.NoError(t, err)
	v2, err := first.Save(ctx, entryFor(userID, 55))
	require.NoError(t, err)

	// A fresh service over the same store simulates a process restart.
	second := NewService(store)
	snapshot, err := second.GetTimeline(ctx, userID)
	require.NoError(t, err)

	require.NotNil(t, snapshot.Current)
	assert.Equal(t, v2.ID, snapshot.Current.ID)
	require.Len(t, snapshot.Past, 1)

	undone, err := second.Undo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, v2.ID, undone.Moved.ID)
}

func TestSave_StoreFailureIsFatalAndLeavesMemoryClean(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewService(store)
	userID := uuid.New()

	_, err := svc.Save(ctx, entryFor(userID, 40))
	require.NoError(t, err)

	store.failOn = "create"
	_, err = svc.Save(ctx, entryFor(userID, 60))
	require.Error(t, err)

	store.failOn = ""
	snapshot, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 40, snapshot.Current.ATSScore, 1e-9, "failed save must not corrupt the timeline")
	assert.Empty(t, snapshot.Past)
}

func TestLinkApply_UpdatesEntry(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	saved, err := svc.Save(ctx, entryFor(userID, 40))
	require.NoError(t, err)

	appliedAt := time.Now().UTC()
	require.NoError(t, svc.LinkApply(ctx, userID, saved.ID, appliedAt))

	snapshot, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Current.AppliedAt)
	assert.WithinDuration(t, appliedAt, *snapshot.Current.AppliedAt, time.Second)
}

func TestTimelines_IndependentAcrossUsers(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Save(ctx, entryFor(alice, 40))
	require.NoError(t, err)

	_, err = svc.Undo(ctx, bob)
	assert.ErrorIs(t, err, ErrNothingToUndo)

	snapshot, err := svc.GetTimeline(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Current)
}

func TestConcurrentSaves_SerializedPerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore())
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score float64) {
			defer wg.Done()
			_, err := svc.Save(ctx, entryFor(userID, score))
			assert.NoError(t, err)
		}(float64(i))
	}
	wg.Wait()

	snapshot, err := svc.GetTimeline(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, snapshot.Past, 19)
	assert.NotNil(t, snapshot.Current)
	assert.Empty(t, snapshot.Future)
}
