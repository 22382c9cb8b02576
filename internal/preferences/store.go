package preferences

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

var (
	ErrUnknownTheme = errors.New("preferences: unknown theme")
	ErrInvalidScore = errors.New("preferences: score must be within [0, 1]")
)

// Store is the client preference state machine. Every mutation of a tracked
// field writes the full snapshot back to storage. Write failures are logged
// and never returned.
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     *logger.Logger
	now     func() time.Time
	state   Snapshot
}

func NewStore(storage Storage, baseLog *logger.Logger) *Store {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &Store{
		storage: storage,
		log:     baseLog.With("service", "PreferenceStore"),
		now:     time.Now,
		state:   DefaultSnapshot(),
	}
}

// Init loads the persisted snapshot. A missing or unreadable snapshot is not
// an error for the caller: the store starts from defaults and logs why.
func (s *Store) Init(ctx context.Context) Snapshot {
	snap, err := LoadSnapshot(ctx, s.storage)

	var corrupt *CorruptSnapshotError
	switch {
	case err == nil:
	case errors.Is(err, ErrNoSnapshot):
		s.log.Debug("no stored preferences, using defaults")
	case errors.As(err, &corrupt):
		s.log.Warn("discarding corrupt preferences", "error", corrupt.Err, "bytes", len(corrupt.Raw))
	default:
		s.log.Warn("preferences storage unavailable, using defaults", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = snap
	return s.state
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetTheme overrides the current theme. The score is left untouched.
func (s *Store) SetTheme(ctx context.Context, key theme.Key) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, key)
	}
	s.mutate(ctx, func(st *Snapshot) {
		st.CurrentTheme = key
	})
	return nil
}

// SetScore records a score. Until the assessment is marked complete it also
// applies the recommended theme for that score.
func (s *Store) SetScore(ctx context.Context, score float64) error {
	if !validScore(score) {
		return fmt.Errorf("%w: got %v", ErrInvalidScore, score)
	}
	s.mutate(ctx, func(st *Snapshot) {
		st.PersonalityScore = score
		if !st.AssessmentComplete {
			st.CurrentTheme = theme.RecommendTheme(score)
		}
	})
	return nil
}

func (s *Store) CompleteAssessment(ctx context.Context) {
	s.mutate(ctx, func(st *Snapshot) {
		st.AssessmentComplete = true
	})
}

// Reset returns to first-run state and erases the persisted snapshot.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DefaultSnapshot()
	if err := s.storage.Remove(ctx, StorageKey); err != nil {
		s.log.Warn("failed to clear stored preferences", "error", err)
	}
}

func (s *Store) mutate(ctx context.Context, fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	fn(&next)
	if next.SameState(s.state) && s.state.Timestamp != 0 {
		return
	}
	next.Timestamp = s.now().UnixMilli()
	s.state = next
	if err := saveSnapshot(ctx, s.storage, next); err != nil {
		s.log.Warn("failed to persist preferences", "error", err)
	}
}

func validScore(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
