package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos/testutil"
	httpH "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/handlers"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	prefRepo := repos.NewPreferenceRepo(db, log)
	contactRepo := repos.NewContactRepo(db, log)

	return NewRouter(RouterConfig{
		Log:               log,
		HealthHandler:     httpH.NewHealthHandler(),
		PreferenceHandler: httpH.NewPreferenceHandler(log, services.NewPreferenceService(log, prefRepo)),
		ContactHandler:    httpH.NewContactHandler(log, services.NewContactService(log, contactRepo)),
		AnalyticsHandler:  httpH.NewAnalyticsHandler(log, services.NewAnalyticsService(log, prefRepo, contactRepo)),
		AssessmentHandler: httpH.NewAssessmentHandler(log, services.NewAssessmentService(log, nil)),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *nethttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "router-test")
	req.RemoteAddr = "192.168.1.50:40000"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, nethttp.MethodGet, "/api/health", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "ok" || body["timestamp"] == "" {
		t.Fatalf("unexpected body %v", body)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("missing X-Request-Id header")
	}
}

func TestUnknownEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, nethttp.MethodGet, "/api/v2/nothing", "")
	if rec.Code != nethttp.StatusNotFound || rec.Body.String() != `{"error":"Endpoint not found"}` {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestPreferenceLifecycle(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, nethttp.MethodPost, "/api/v1/preferences", `{"personality_score": 45.2, "theme": "professional"}`)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create status = %d body=%s", rec.Code, rec.Body.String())
	}
	created := decode(t, rec)
	if created["personality_category"] != "balanced" || created["personality_score"] != 45.2 {
		t.Fatalf("unexpected created body %v", created)
	}
	if _, leaked := created["ip_address"]; leaked {
		t.Fatalf("ip address must not be serialized: %v", created)
	}
	id := int(created["id"].(float64))

	rec = do(t, r, nethttp.MethodPut, fmt.Sprintf("/api/v1/preferences/%d", id), `{"theme": "creative"}`)
	if rec.Code != nethttp.StatusOK || decode(t, rec)["theme"] != "creative" {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, nethttp.MethodPut, fmt.Sprintf("/api/v1/preferences/%d", id), `{"theme": "neon"}`)
	if rec.Code != nethttp.StatusBadRequest || rec.Body.String() != `{"error":["Theme is not included in the list"]}` {
		t.Fatalf("invalid update: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, nethttp.MethodGet, fmt.Sprintf("/api/v1/preferences/%d", id), "")
	if rec.Code != nethttp.StatusOK || decode(t, rec)["theme"] != "creative" {
		t.Fatalf("get: %d %s", rec.Code, rec.Body.String())
	}

	for _, path := range []string{"/api/v1/preferences/999", "/api/v1/preferences/abc"} {
		rec = do(t, r, nethttp.MethodGet, path, "")
		if rec.Code != nethttp.StatusNotFound || rec.Body.String() != `{"error":"Preference not found"}` {
			t.Fatalf("%s: %d %s", path, rec.Code, rec.Body.String())
		}
	}
	rec = do(t, r, nethttp.MethodPut, "/api/v1/preferences/999", `{"theme": "neon"}`)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("update of missing record must 404 before validating, got %d", rec.Code)
	}
}

func TestPreferenceValidationAndListing(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, nethttp.MethodPost, "/api/v1/preferences", `{"personality_score": 120, "theme": "professional"}`)
	if rec.Code != nethttp.StatusBadRequest || rec.Body.String() != `{"error":["Personality score must be less than or equal to 100"]}` {
		t.Fatalf("out of range: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, nethttp.MethodPost, "/api/v1/preferences", `{"personality_score": `)
	if rec.Code != nethttp.StatusBadRequest || rec.Body.String() != `{"error":["Request body must be valid JSON"]}` {
		t.Fatalf("malformed: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, nethttp.MethodGet, "/api/v1/preferences", "")
	if rec.Code != nethttp.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list: %d %s", rec.Code, rec.Body.String())
	}

	for _, body := range []string{
		`{"personality_score": 10, "theme": "minimalist"}`,
		`{"personality_score": 55, "theme": "creative"}`,
		`{"personality_score": 90, "theme": "creative"}`,
	} {
		if rec := do(t, r, nethttp.MethodPost, "/api/v1/preferences", body); rec.Code != nethttp.StatusCreated {
			t.Fatalf("create %s: %d %s", body, rec.Code, rec.Body.String())
		}
	}

	first := do(t, r, nethttp.MethodGet, "/api/v1/preferences", "").Body.String()
	second := do(t, r, nethttp.MethodGet, "/api/v1/preferences", "").Body.String()
	if first != second {
		t.Fatalf("listing is not stable:\n%s\n%s", first, second)
	}

	rec = do(t, r, nethttp.MethodGet, "/api/v1/preferences?theme=creative&min_score=50&max_score=60", "")
	var filtered []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["personality_score"] != 55.0 {
		t.Fatalf("filtered list = %v", filtered)
	}
}

func TestContactScenarios(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, nethttp.MethodPost, "/api/v1/contacts", `{"name":"Jane","email":"jane@example.com","message":"hello"}`)
	if rec.Code != nethttp.StatusBadRequest || rec.Body.String() != `{"error":["Message is too short (minimum is 10 characters)"]}` {
		t.Fatalf("short message: %d %s", rec.Code, rec.Body.String())
	}

	msg := strings.Repeat("a", 50)
	rec = do(t, r, nethttp.MethodPost, "/api/v1/contacts", fmt.Sprintf(`{"name":"Jane","email":"Jane@Example.com","message":%q,"status":"replied"}`, msg))
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	created := decode(t, rec)
	if created["status"] != "pending" || created["email"] != "jane@example.com" || created["short_message"] != msg {
		t.Fatalf("unexpected contact %v", created)
	}
	id := int(created["id"].(float64))

	rec = do(t, r, nethttp.MethodPut, fmt.Sprintf("/api/v1/contacts/%d", id), `{"status":"archived"}`)
	if rec.Code != nethttp.StatusBadRequest || rec.Body.String() != `{"error":["Status is not included in the list"]}` {
		t.Fatalf("archived: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, nethttp.MethodGet, fmt.Sprintf("/api/v1/contacts/%d", id), "")
	if decode(t, rec)["status"] != "pending" {
		t.Fatalf("status changed after rejected update: %s", rec.Body.String())
	}

	rec = do(t, r, nethttp.MethodPost, fmt.Sprintf("/api/v1/contacts/%d/read", id), "")
	if rec.Code != nethttp.StatusOK || decode(t, rec)["status"] != "read" {
		t.Fatalf("mark read: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, nethttp.MethodPut, fmt.Sprintf("/api/v1/contacts/%d", id), `{"status":"replied"}`)
	if rec.Code != nethttp.StatusOK || decode(t, rec)["status"] != "replied" {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, nethttp.MethodPut, "/api/v1/contacts/4242", `{"status":"read"}`)
	if rec.Code != nethttp.StatusNotFound || rec.Body.String() != `{"error":"Contact not found"}` {
		t.Fatalf("missing: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, nethttp.MethodGet, "/api/v1/contacts?status=replied&recent=true", "")
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("filtered contacts: %v %s", err, rec.Body.String())
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, nethttp.MethodGet, "/api/v1/analytics/user-engagement", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	eng := decode(t, rec)
	if eng["engagement_rate"] != 0.0 || eng["total_users"] != 0.0 {
		t.Fatalf("empty engagement = %v", eng)
	}

	do(t, r, nethttp.MethodPost, "/api/v1/preferences", `{"personality_score": 25.5, "theme": "corporate"}`)
	do(t, r, nethttp.MethodPost, "/api/v1/preferences", `{"personality_score": 25.5, "theme": "corporate"}`)
	do(t, r, nethttp.MethodPost, "/api/v1/contacts", `{"name":"Jo","email":"jo@example.com","message":"Would love to chat about a project."}`)

	dist := decode(t, do(t, r, nethttp.MethodGet, "/api/v1/analytics/personality-distribution", ""))
	if got := dist["personality_distribution"].(map[string]any)["25.5"]; got != 2.0 {
		t.Fatalf("distribution = %v", dist)
	}
	pop := decode(t, do(t, r, nethttp.MethodGet, "/api/v1/analytics/theme-popularity", ""))
	if got := pop["theme_popularity"].(map[string]any)["corporate"]; got != 2.0 {
		t.Fatalf("popularity = %v", pop)
	}
	eng = decode(t, do(t, r, nethttp.MethodGet, "/api/v1/analytics/user-engagement", ""))
	if eng["engagement_rate"] != 0.5 || eng["recent_users"] != 2.0 {
		t.Fatalf("engagement = %v", eng)
	}
}

func TestAssessmentEndpoints(t *testing.T) {
	r := newTestRouter(t)

	q := decode(t, do(t, r, nethttp.MethodGet, "/api/v1/assessment/questions", ""))
	if qs, ok := q["questions"].([]any); !ok || len(qs) != 5 {
		t.Fatalf("questions = %v", q)
	}

	rec := do(t, r, nethttp.MethodPost, "/api/v1/assessment/score", `{"answers":{"1":0,"2":0,"3":0,"4":0,"5":0}}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("score: %d %s", rec.Code, rec.Body.String())
	}
	res := decode(t, rec)
	if res["recommended_theme"] != "professional" || res["personality_category"] != "analytical" {
		t.Fatalf("score result = %v", res)
	}

	rec = do(t, r, nethttp.MethodPost, "/api/v1/assessment/score", `{"answers":{"1":0.5}}`)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("incomplete answers: %d %s", rec.Code, rec.Body.String())
	}

	themes := decode(t, do(t, r, nethttp.MethodGet, "/api/v1/themes", ""))
	if list, ok := themes["themes"].([]any); !ok || len(list) != 4 {
		t.Fatalf("themes = %v", themes)
	}
}
