package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-funnel-checklist/components/checklist"
	"github.com/goliatone/go-funnel-checklist/components/checklist/commands"
	"github.com/goliatone/go-funnel-checklist/components/checklist/queries"
)

// DefaultPagePath is where the checklist page is served.
const DefaultPagePath = "/checklist"

const maxBodyBytes = 1 << 20

// Handlers exposes HTTP endpoints backed by shared commands.
type Handlers struct {
	Sessions   SessionResolver
	Controller *checklist.Controller
	API        Executor
	Summary    gocommand.Querier[queries.SummaryInput, checklist.SummaryView]
	Validator  checklist.GoalPayloadValidator
	PagePath   string
}

// HandlePage renders the selected section as HTML.
func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	section, err := checklist.ParseSection(r.URL.Query().Get(checklist.FieldSection))
	if err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}
	session, _, err := h.Sessions.ResolveSession(r.Context(), requestSessionID(r))
	if err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}
	var buf bytes.Buffer
	if err := h.Controller.RenderSection(r.Context(), session.ID, section, &buf); err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}
	w.Header().Set(SessionHeader, session.ID)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandleSection returns the section payload as JSON.
func (h *Handlers) HandleSection(w http.ResponseWriter, r *http.Request) {
	section, err := checklist.ParseSection(r.URL.Query().Get(checklist.FieldSection))
	if err != nil {
		writeError(w, err)
		return
	}
	session, _, err := h.Sessions.ResolveSession(r.Context(), requestSessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	payload, err := h.Controller.SectionPayload(r.Context(), session.ID, section)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(SessionHeader, session.ID)
	writeJSON(w, http.StatusOK, payload)
}

// HandleToggle checks or unchecks a funnel or feature.
func (h *Handlers) HandleToggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, f Fields, sessionID string) (map[string]any, error) {
		input, err := ToggleInput(f, sessionID)
		if err != nil {
			return nil, err
		}
		if err := h.API.Toggle(ctx, input); err != nil {
			return nil, err
		}
		return map[string]any{"kind": input.Kind, "name": input.Name, "selected": input.On}, nil
	})
}

// HandleNote stores the text of a note widget.
func (h *Handlers) HandleNote(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, f Fields, sessionID string) (map[string]any, error) {
		input, err := NoteInput(f, sessionID)
		if err != nil {
			return nil, err
		}
		if err := h.API.SaveNote(ctx, input); err != nil {
			return nil, err
		}
		return map[string]any{"field": input.Field, "name": input.Name, "text": input.Text}, nil
	})
}

// HandleGoals updates the goals of a funnel.
func (h *Handlers) HandleGoals(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, f Fields, sessionID string) (map[string]any, error) {
		input, err := GoalsInput(f, sessionID, h.Validator)
		if err != nil {
			return nil, err
		}
		var stored checklist.GoalSet
		input.Result = &stored
		if err := h.API.SetGoals(ctx, input); err != nil {
			return nil, err
		}
		return map[string]any{"funnel": input.Funnel, "goals": stored}, nil
	})
}

// HandleSummary returns the summary projection as JSON.
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	session, _, err := h.Sessions.ResolveSession(r.Context(), requestSessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.Summary.Query(r.Context(), queries.SummaryInput{SessionID: session.ID})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(SessionHeader, session.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"session": session.ID,
		"summary": summary,
		"lines":   summary.Lines(),
	})
}

// HandleEndSession drops the session. Form posts are sent back to a fresh page.
func (h *Handlers) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sessionID := fields.SessionID(r.Header.Get(SessionHeader))
	if sessionID == "" {
		writeError(w, errors.Join(errBadRequest, errors.New("session id is required")))
		return
	}
	if err := h.API.EndSession(r.Context(), commands.EndSessionInput{SessionID: sessionID}); err != nil {
		writeError(w, err)
		return
	}
	if fields.JSON || r.Method == http.MethodDelete {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ended", "session": sessionID})
		return
	}
	http.Redirect(w, r, h.pagePath(), http.StatusSeeOther)
}

type mutation func(ctx context.Context, f Fields, sessionID string) (map[string]any, error)

func (h *Handlers) mutate(w http.ResponseWriter, r *http.Request, apply mutation) {
	fields, err := readFields(r)
	if err != nil {
		writeError(w, err)
		return
	}
	session, _, err := h.Sessions.ResolveSession(r.Context(), fields.SessionID(r.Header.Get(SessionHeader)))
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := apply(r.Context(), fields, session.ID)
	if err != nil {
		if fields.JSON {
			writeError(w, err)
		} else {
			http.Error(w, err.Error(), StatusFor(err))
		}
		return
	}
	w.Header().Set(SessionHeader, session.ID)
	if fields.JSON {
		result["session"] = session.ID
		writeJSON(w, http.StatusOK, result)
		return
	}
	http.Redirect(w, r, SectionURL(h.pagePath(), ReturnSlug(fields), session.ID), http.StatusSeeOther)
}

func (h *Handlers) pagePath() string {
	if h.PagePath == "" {
		return DefaultPagePath
	}
	return h.PagePath
}

// ReturnSlug is the section a form post returns to.
func ReturnSlug(f Fields) string {
	section, err := checklist.ParseSection(f.Get(checklist.FieldSection))
	if err != nil {
		return checklist.SectionFunnelTypes.Slug()
	}
	return section.Slug()
}

func readFields(r *http.Request) (Fields, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return Fields{}, err
	}
	return ParseFields(r.Header.Get("Content-Type"), body, r.URL.Query())
}

func requestSessionID(r *http.Request) string {
	if id := r.URL.Query().Get(checklist.FieldSession); id != "" {
		return id
	}
	return r.Header.Get(SessionHeader)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}
