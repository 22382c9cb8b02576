package preferences

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

var ErrAssessmentIncomplete = errors.New("preferences: assessment not complete")

const forwarderUserAgent = "lekopien-portfolio-quiz/1.0"

// RejectedError carries the messages returned by the API for a refused submission.
type RejectedError struct {
	Status   int
	Messages []string
}

func (e *RejectedError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("preferences: api rejected snapshot (status %d)", e.Status)
	}
	return fmt.Sprintf("preferences: api rejected snapshot (status %d): %s", e.Status, strings.Join(e.Messages, "; "))
}

// SubmittedRecord is the part of the API's preference record the client reads back.
type SubmittedRecord struct {
	ID                  uint    `json:"id"`
	PersonalityScore    float64 `json:"personality_score"`
	Theme               string  `json:"theme"`
	PersonalityCategory string  `json:"personality_category"`
}

// Forwarder sends a completed snapshot to the preference record API.
type Forwarder struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

func NewForwarder(baseURL string, client *http.Client, baseLog *logger.Logger) *Forwarder {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &Forwarder{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		log:     baseLog.With("service", "PreferenceForwarder"),
	}
}

func (f *Forwarder) Submit(ctx context.Context, snap Snapshot) (*SubmittedRecord, error) {
	if !snap.AssessmentComplete {
		return nil, ErrAssessmentIncomplete
	}
	body, err := json.Marshal(map[string]any{
		"personality_score": portfolio.ScoreToServer(snap.PersonalityScore),
		"theme":             portfolio.ServerThemeFor(snap.CurrentTheme, snap.PersonalityScore),
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/api/v1/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", forwarderUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("preferences: submit: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("preferences: read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		rej := &RejectedError{Status: resp.StatusCode}
		var payload struct {
			Error json.RawMessage `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil && len(payload.Error) > 0 {
			var list []string
			var single string
			if json.Unmarshal(payload.Error, &list) == nil {
				rej.Messages = list
			} else if json.Unmarshal(payload.Error, &single) == nil {
				rej.Messages = []string{single}
			}
		}
		f.log.Warn("preference submission rejected", "status", resp.StatusCode, "messages", rej.Messages)
		return nil, rej
	}

	var rec SubmittedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("preferences: decode record: %w", err)
	}
	f.log.Info("preference submitted", "id", rec.ID, "theme", rec.Theme)
	return &rec, nil
}
