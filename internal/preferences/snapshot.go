package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
)

// StorageKey is the single key the snapshot lives under. It matches the key
// the browser build uses so exported blobs can be loaded as is.
const StorageKey = "lekopien-preferences"

// Snapshot is the client-local preference state. Timestamp is unix millis of
// the last write.
type Snapshot struct {
	CurrentTheme       theme.Key `json:"currentTheme"`
	PersonalityScore   float64   `json:"personalityScore"`
	AssessmentComplete bool      `json:"assessmentComplete"`
	Timestamp          int64     `json:"timestamp"`
}

func DefaultSnapshot() Snapshot {
	return Snapshot{CurrentTheme: theme.DefaultKey}
}

// SameState compares the tracked fields and ignores the timestamp.
func (s Snapshot) SameState(o Snapshot) bool {
	return s.CurrentTheme == o.CurrentTheme &&
		s.PersonalityScore == o.PersonalityScore &&
		s.AssessmentComplete == o.AssessmentComplete
}

func (s Snapshot) WrittenAt() time.Time {
	if s.Timestamp == 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.Timestamp)
}

var ErrNoSnapshot = errors.New("preferences: no stored snapshot")

type CorruptSnapshotError struct {
	Raw []byte
	Err error
}

func (e *CorruptSnapshotError) Error() string {
	return fmt.Sprintf("preferences: corrupt snapshot: %v", e.Err)
}

func (e *CorruptSnapshotError) Unwrap() error { return e.Err }

// LoadSnapshot reads and decodes the stored snapshot. Missing fields take
// their default values and an unknown theme key falls back to the default
// theme. The caller decides what to do with an error; see Store.Init.
func LoadSnapshot(ctx context.Context, storage Storage) (Snapshot, error) {
	raw, err := storage.Get(ctx, StorageKey)
	if errors.Is(err, ErrKeyNotFound) {
		return DefaultSnapshot(), ErrNoSnapshot
	}
	if err != nil {
		return DefaultSnapshot(), fmt.Errorf("preferences: read snapshot: %w", err)
	}

	var stored struct {
		CurrentTheme       *string  `json:"currentTheme"`
		PersonalityScore   *float64 `json:"personalityScore"`
		AssessmentComplete *bool    `json:"assessmentComplete"`
		Timestamp          *int64   `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return DefaultSnapshot(), &CorruptSnapshotError{Raw: raw, Err: err}
	}

	snap := DefaultSnapshot()
	if stored.CurrentTheme != nil {
		if k, ok := theme.ParseKey(*stored.CurrentTheme); ok {
			snap.CurrentTheme = k
		}
	}
	if stored.PersonalityScore != nil && validScore(*stored.PersonalityScore) {
		snap.PersonalityScore = *stored.PersonalityScore
	}
	if stored.AssessmentComplete != nil {
		snap.AssessmentComplete = *stored.AssessmentComplete
	}
	if stored.Timestamp != nil {
		snap.Timestamp = *stored.Timestamp
	}
	return snap, nil
}

func saveSnapshot(ctx context.Context, storage Storage, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return storage.Set(ctx, StorageKey, raw)
}
