package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-funnel-checklist/components/checklist"
	"github.com/goliatone/go-funnel-checklist/components/checklist/commands"
)

// SessionHeader carries the session id for API clients.
const SessionHeader = "X-Checklist-Session"

// SessionResolver returns the live session for an id, starting a new one when
// the id is empty or expired.
type SessionResolver interface {
	ResolveSession(ctx context.Context, id string) (*checklist.Session, bool, error)
}

// Fields is a decoded request body, either a url-encoded form or a JSON object.
type Fields struct {
	JSON    bool
	form    url.Values
	payload map[string]any
	query   url.Values
}

// ParseFields decodes body according to contentType. Query values are used as
// a fallback for missing fields.
func ParseFields(contentType string, body []byte, query url.Values) (Fields, error) {
	fields := Fields{query: query}
	if IsJSON(contentType) {
		fields.JSON = true
		if len(bytes.TrimSpace(body)) == 0 {
			fields.payload = map[string]any{}
			return fields, nil
		}
		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()
		if err := decoder.Decode(&fields.payload); err != nil {
			return Fields{}, fmt.Errorf("%w: decode json body: %v", errBadRequest, err)
		}
		if fields.payload == nil {
			fields.payload = map[string]any{}
		}
		return fields, nil
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return Fields{}, fmt.Errorf("%w: decode form body: %v", errBadRequest, err)
	}
	fields.form = form
	return fields, nil
}

// IsJSON reports whether the content type is a JSON media type.
func IsJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "application/json")
}

// Get returns the string form of a field.
func (f Fields) Get(key string) string {
	if f.JSON {
		if v, ok := f.payload[key]; ok && v != nil {
			switch t := v.(type) {
			case string:
				return t
			case bool:
				if t {
					return "true"
				}
				return "false"
			default:
				return fmt.Sprint(t)
			}
		}
	} else if f.form.Has(key) {
		return f.form.Get(key)
	}
	return f.query.Get(key)
}

// Payload returns the decoded JSON object.
func (f Fields) Payload() map[string]any {
	return f.payload
}

// SessionID picks the session from the body, then the header, then the query.
func (f Fields) SessionID(header string) string {
	if id := strings.TrimSpace(f.Get(checklist.FieldSession)); id != "" {
		return id
	}
	return strings.TrimSpace(header)
}

// ToggleInput builds the toggle command input from the request fields.
func ToggleInput(f Fields, sessionID string) (commands.ToggleEntryInput, error) {
	kind, err := checklist.ParseEntryKind(f.Get(checklist.FieldKind))
	if err != nil {
		return commands.ToggleEntryInput{}, err
	}
	on, err := checklist.ParseToggle(f.Get(checklist.FieldOn))
	if err != nil {
		return commands.ToggleEntryInput{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return commands.ToggleEntryInput{
		SessionID: sessionID,
		Kind:      kind,
		Name:      strings.TrimSpace(f.Get(checklist.FieldName)),
		On:        on,
	}, nil
}

// NoteInput builds the save note command input from the request fields.
func NoteInput(f Fields, sessionID string) (commands.SaveNoteInput, error) {
	field := checklist.NoteField(strings.TrimSpace(f.Get(checklist.FieldNote)))
	if !field.Valid() {
		return commands.SaveNoteInput{}, fmt.Errorf("%w: unknown note field %q", errBadRequest, field)
	}
	return commands.SaveNoteInput{
		SessionID: sessionID,
		Field:     field,
		Name:      strings.TrimSpace(f.Get(checklist.FieldName)),
		Text:      f.Get(checklist.FieldText),
	}, nil
}

// GoalsInput builds the set goals command input. JSON bodies are checked
// against the goal payload schema first.
func GoalsInput(f Fields, sessionID string, validator checklist.GoalPayloadValidator) (commands.SetGoalsInput, error) {
	input := commands.SetGoalsInput{SessionID: sessionID}
	if f.JSON {
		payload := f.Payload()
		if validator != nil {
			if err := validator.Validate(payload); err != nil {
				return commands.SetGoalsInput{}, err
			}
		}
		funnel, goals, err := checklist.GoalInputFromPayload(payload)
		if err != nil {
			return commands.SetGoalsInput{}, err
		}
		input.Funnel = funnel
		input.Goals = goals
		return input, nil
	}
	goals, err := checklist.ParseGoalForm(f.Get)
	if err != nil {
		return commands.SetGoalsInput{}, err
	}
	input.Funnel = strings.TrimSpace(f.Get(checklist.FieldFunnel))
	input.Goals = goals
	return input, nil
}

var errBadRequest = errors.New("httpapi: bad request")

// StatusFor maps checklist errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, checklist.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, checklist.ErrUnknownSection),
		errors.Is(err, checklist.ErrUnknownEntry),
		errors.Is(err, checklist.ErrInvalidGoal),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SectionURL is the page link of a section for a session.
func SectionURL(pagePath, slug, sessionID string) string {
	values := url.Values{}
	if slug != "" {
		values.Set(checklist.FieldSection, slug)
	}
	if sessionID != "" {
		values.Set(checklist.FieldSession, sessionID)
	}
	if len(values) == 0 {
		return pagePath
	}
	return pagePath + "?" + values.Encode()
}
