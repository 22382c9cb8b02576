package preferences

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
)

func TestForwarderSubmitsServerShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/preferences", r.URL.Path)
		assert.Equal(t, forwarderUserAgent, r.UserAgent())
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"personality_score":92,"theme":"playful","personality_category":"visionary"}`))
	}))
	defer srv.Close()

	f := NewForwarder(srv.URL+"/", srv.Client(), nil)
	rec, err := f.Submit(context.Background(), Snapshot{CurrentTheme: theme.Creative, PersonalityScore: 0.92, AssessmentComplete: true})
	require.NoError(t, err)

	assert.Equal(t, 92.0, got["personality_score"])
	assert.Equal(t, "playful", got["theme"])
	assert.Equal(t, uint(3), rec.ID)
	assert.Equal(t, "visionary", rec.PersonalityCategory)
}

func TestForwarderReportsValidationMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":["Theme is not included in the list"]}`))
	}))
	defer srv.Close()

	_, err := NewForwarder(srv.URL, srv.Client(), nil).Submit(context.Background(), Snapshot{CurrentTheme: theme.Dark, AssessmentComplete: true})
	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusBadRequest, rej.Status)
	assert.Equal(t, []string{"Theme is not included in the list"}, rej.Messages)
}

func TestForwarderRequiresCompleteAssessment(t *testing.T) {
	_, err := NewForwarder("http://127.0.0.1:0", nil, nil).Submit(context.Background(), DefaultSnapshot())
	assert.ErrorIs(t, err, ErrAssessmentIncomplete)
}
