package gorouter

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-funnel-checklist/components/checklist"
	"github.com/goliatone/go-funnel-checklist/components/checklist/commands"
	"github.com/goliatone/go-funnel-checklist/components/checklist/httpapi"
	"github.com/goliatone/go-funnel-checklist/components/checklist/queries"
)

func newFiberApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Chdir(t.TempDir())
	renderer, err := checklist.NewTemplateRenderer()
	if err != nil {
		t.Fatalf("template renderer: %v", err)
	}
	service := checklist.NewService(checklist.Options{})
	server := router.NewFiberAdapter()
	err = Register(Config[*fiber.App]{
		Router: server.Router(),
		Controller: checklist.NewController(checklist.ControllerOptions{
			Service:  service,
			Renderer: renderer,
			BasePath: httpapi.DefaultPagePath,
		}),
		Sessions: service,
		API: httpapi.CommandExecutor{
			ToggleCommand:     commands.NewToggleEntryCommand(service, nil),
			SaveNoteCommand:   commands.NewSaveNoteCommand(service, nil),
			SetGoalsCommand:   commands.NewSetGoalsCommand(service, nil),
			EndSessionCommand: commands.NewEndSessionCommand(service, nil),
		},
		Summary:   queries.NewSummaryQuery(service),
		Validator: checklist.NewJSONSchemaGoalValidator(),
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	return server.WrappedRouter()
}

func send(t *testing.T, app *fiber.App, method, target, contentType, body, sessionID string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sessionID != "" {
		req.Header.Set(httpapi.SessionHeader, sessionID)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(data)
}

func TestFiberPageStartsSession(t *testing.T) {
	app := newFiberApp(t)
	resp, body := send(t, app, http.MethodGet, "/checklist?section=funnel-types", "", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if resp.Header.Get(httpapi.SessionHeader) == "" {
		t.Fatalf("expected session header")
	}
	if !strings.Contains(body, "Main Funnel Types") || !strings.Contains(body, "Webinar Funnel - ") {
		t.Fatalf("expected funnel types content, got %s", body)
	}
}

func TestFiberToggleGoalsSummaryFlow(t *testing.T) {
	app := newFiberApp(t)
	resp, _ := send(t, app, http.MethodGet, "/checklist", "", "", "")
	sessionID := resp.Header.Get(httpapi.SessionHeader)
	if sessionID == "" {
		t.Fatalf("expected session header")
	}

	resp, body := send(t, app, http.MethodPost, "/checklist/toggle", "application/json",
		`{"kind":"funnel","name":"Webinar Funnel","on":true}`, sessionID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d: %s", resp.StatusCode, body)
	}

	resp, body = send(t, app, http.MethodPost, "/checklist/goals", "application/json",
		`{"funnel":"Webinar Funnel","conversion_rate":45.5,"leads_target":200,"revenue_goal":5000}`, sessionID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("goals: expected 200, got %d: %s", resp.StatusCode, body)
	}

	resp, body = send(t, app, http.MethodGet, "/checklist/summary.json", "", "", sessionID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var summary struct {
		Session string   `json:"session"`
		Lines   []string `json:"lines"`
	}
	if err := json.Unmarshal([]byte(body), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Session != sessionID {
		t.Fatalf("expected session %q, got %q", sessionID, summary.Session)
	}
	for _, want := range []string{
		"- **Webinar Funnel**",
		"- Target Conversion Rate: 45.5",
		"- Monthly Leads Target: 200",
		"- Revenue Goal: $5000",
	} {
		if !containsLine(summary.Lines, want) {
			t.Fatalf("expected line %q in %v", want, summary.Lines)
		}
	}
}

func TestFiberFormPostRendersSection(t *testing.T) {
	app := newFiberApp(t)
	resp, _ := send(t, app, http.MethodGet, "/checklist", "", "", "")
	sessionID := resp.Header.Get(httpapi.SessionHeader)

	form := url.Values{
		checklist.FieldSession: {sessionID},
		checklist.FieldSection: {"checklist-features"},
		checklist.FieldKind:    {"feature"},
		checklist.FieldName:    {"CTA"},
		checklist.FieldOn:      {"true"},
	}
	resp, body := send(t, app, http.MethodPost, "/checklist/toggle", "application/x-www-form-urlencoded", form.Encode(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, "Essential Funnel Checklist Features") || !strings.Contains(body, ">Write implementation tips here for CTA</textarea>") {
		t.Fatalf("expected features page with CTA note, got %s", body)
	}

	end := url.Values{checklist.FieldSession: {sessionID}}
	resp, body = send(t, app, http.MethodPost, "/checklist/session/end", "application/x-www-form-urlencoded", end.Encode(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("end session: expected 200, got %d: %s", resp.StatusCode, body)
	}
	if next := resp.Header.Get(httpapi.SessionHeader); next == "" || next == sessionID {
		t.Fatalf("expected a fresh session after ending, got %q", next)
	}
}

func TestFiberRejectsMalformedGoals(t *testing.T) {
	app := newFiberApp(t)
	resp, _ := send(t, app, http.MethodGet, "/checklist", "", "", "")
	sessionID := resp.Header.Get(httpapi.SessionHeader)

	cases := []struct {
		contentType string
		body        string
	}{
		{"application/json", `{"funnel":"Webinar Funnel","conversion_rate":"high"}`},
		{"application/json", `{"funnel":"Webinar Funnel","leads_target":1e20}`},
		{"application/x-www-form-urlencoded", "funnel=Webinar+Funnel&leads_target=2.5"},
		{"application/json", `{"funnel":"Quiz Funnel","conversion_rate":10}`},
	}
	for _, tc := range cases {
		resp, body := send(t, app, http.MethodPost, "/checklist/goals", tc.contentType, tc.body, sessionID)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d: %s", tc.body, resp.StatusCode, body)
		}
	}
}

func TestFiberDeleteSession(t *testing.T) {
	app := newFiberApp(t)
	resp, _ := send(t, app, http.MethodGet, "/checklist", "", "", "")
	sessionID := resp.Header.Get(httpapi.SessionHeader)

	resp, body := send(t, app, http.MethodDelete, "/checklist/session", "", "", sessionID)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ended"`) {
		t.Fatalf("expected ended status, got %d: %s", resp.StatusCode, body)
	}
	resp, _ = send(t, app, http.MethodDelete, "/checklist/session", "", "", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without session id, got %d", resp.StatusCode)
	}
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
