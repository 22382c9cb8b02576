package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type failingStorage struct {
	*MemoryStorage
	setErr error
}

func (f *failingStorage) Set(context.Context, string, []byte) error { return f.setErr }

func newTestStore(t *testing.T, storage Storage) *Store {
	t.Helper()
	s := NewStore(storage, logger.Nop())
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestInitWithoutSnapshotUsesDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, NewMemoryStorage())

	got := s.Init(ctx)
	assert.True(t, got.SameState(DefaultSnapshot()))
	assert.Equal(t, theme.Professional, got.CurrentTheme)
}

func TestInitRecoversFromCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	require.NoError(t, mem.Set(ctx, StorageKey, []byte("{not json")))

	_, err := LoadSnapshot(ctx, mem)
	var corrupt *CorruptSnapshotError
	require.ErrorAs(t, err, &corrupt)

	got := newTestStore(t, mem).Init(ctx)
	assert.True(t, got.SameState(DefaultSnapshot()))
}

func TestLoadSnapshotFillsMissingFields(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	require.NoError(t, mem.Set(ctx, StorageKey, []byte(`{"personalityScore":0.7,"currentTheme":"neon"}`)))

	snap, err := LoadSnapshot(ctx, mem)
	require.NoError(t, err)
	assert.Equal(t, theme.Professional, snap.CurrentTheme)
	assert.Equal(t, 0.7, snap.PersonalityScore)
	assert.False(t, snap.AssessmentComplete)
}

func TestSetScoreRecommendsThemeUntilComplete(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	s := newTestStore(t, mem)
	s.Init(ctx)

	require.NoError(t, s.SetScore(ctx, 0.5))
	assert.Equal(t, theme.Dark, s.Snapshot().CurrentTheme)

	s.CompleteAssessment(ctx)
	require.NoError(t, s.SetScore(ctx, 0.1))
	snap := s.Snapshot()
	assert.Equal(t, theme.Dark, snap.CurrentTheme)
	assert.Equal(t, 0.1, snap.PersonalityScore)
	assert.True(t, snap.AssessmentComplete)

	stored, err := LoadSnapshot(ctx, mem)
	require.NoError(t, err)
	assert.True(t, stored.SameState(snap))
	assert.Equal(t, int64(1700000000000), stored.Timestamp)
}

func TestSetThemeKeepsScore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, NewMemoryStorage())
	s.Init(ctx)
	require.NoError(t, s.SetScore(ctx, 0.9))
	s.CompleteAssessment(ctx)

	require.NoError(t, s.SetTheme(ctx, theme.Minimal))
	assert.Equal(t, theme.Minimal, s.Snapshot().CurrentTheme)
	assert.Equal(t, 0.9, s.Snapshot().PersonalityScore)

	err := s.SetTheme(ctx, theme.Assessment)
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, theme.Minimal, s.Snapshot().CurrentTheme)
}

func TestSetScoreRejectsOutOfRange(t *testing.T) {
	s := newTestStore(t, NewMemoryStorage())
	assert.ErrorIs(t, s.SetScore(context.Background(), 1.5), ErrInvalidScore)
	assert.ErrorIs(t, s.SetScore(context.Background(), -0.1), ErrInvalidScore)
}

func TestResetThenInitYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	s := newTestStore(t, mem)
	s.Init(ctx)
	require.NoError(t, s.SetScore(ctx, 0.75))
	s.CompleteAssessment(ctx)

	s.Reset(ctx)
	_, err := mem.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	fresh := newTestStore(t, mem).Init(ctx)
	assert.Equal(t, Snapshot{CurrentTheme: theme.Professional}, fresh)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &failingStorage{MemoryStorage: NewMemoryStorage(), setErr: errors.New("disk full")})
	s.Init(ctx)

	require.NoError(t, s.SetScore(ctx, 0.3))
	assert.Equal(t, theme.Minimal, s.Snapshot().CurrentTheme)
}

func TestSnapshotWireShape(t *testing.T) {
	raw, err := json.Marshal(Snapshot{CurrentTheme: theme.Creative, PersonalityScore: 0.66, AssessmentComplete: true, Timestamp: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentTheme":"creative","personalityScore":0.66,"assessmentComplete":true,"timestamp":42}`, string(raw))
}
