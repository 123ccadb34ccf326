package checklist

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errMissingSessionStore = errors.New("checklist: session store not configured")

// Options configures the checklist Service. Collaborators are interfaces so
// applications can swap implementations.
type Options struct {
	Sessions  SessionStore
	Catalog   CatalogRegistry
	Charts    GoalsChartRenderer
	Telemetry Telemetry
}

// Service owns the session form state and projects it onto sections.
type Service struct {
	opts Options
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Sessions == nil {
		opts.Sessions = NewCacheSessionStore(DefaultSessionTTL, DefaultSessionCleanup)
	}
	if opts.Catalog == nil {
		opts.Catalog = NewRegistry()
	}
	if opts.Charts == nil {
		opts.Charts = NewGoalsChart()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// Catalog exposes the catalog registry used by the service.
func (s *Service) Catalog() CatalogRegistry {
	return s.opts.Catalog
}

// ResolveSession returns the live session for id, or starts a new one when id
// is empty or expired. created reports whether a new session was started.
func (s *Service) ResolveSession(ctx context.Context, id string) (session *Session, created bool, err error) {
	store, err := s.sessionStore()
	if err != nil {
		return nil, false, err
	}
	if id = strings.TrimSpace(id); id != "" {
		session, err = store.Get(ctx, id)
		if err == nil {
			return session, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, false, err
		}
	}
	session, err = store.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	s.recordTelemetry(ctx, "checklist.session.start", map[string]any{
		"session_id": session.ID,
		"expired":    id != "",
	})
	return session, true, nil
}

// Session returns the live session for id.
func (s *Service) Session(ctx context.Context, id string) (*Session, error) {
	store, err := s.sessionStore()
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, id)
}

// Toggle checks or unchecks a catalog entry. Notes and goals of the entry are
// kept when it is unchecked.
func (s *Service) Toggle(ctx context.Context, sessionID string, kind EntryKind, name string, on bool) error {
	entry, err := Entry(s.opts.Catalog, kind, name)
	if err != nil {
		return err
	}
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	session.State.SetSelected(entry.Name, on)
	if err := s.opts.Sessions.Save(ctx, session); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "checklist.entry.toggle", map[string]any{
		"session_id": sessionID,
		"kind":       string(kind),
		"entry":      entry.Name,
		"selected":   on,
	})
	return nil
}

// SaveNote stores free text in one of the note widgets of an entry.
func (s *Service) SaveNote(ctx context.Context, sessionID string, field NoteField, name, text string) error {
	if !field.Valid() {
		return fmt.Errorf("checklist: unknown note field %q", field)
	}
	entry, err := Entry(s.opts.Catalog, field.Kind(), name)
	if err != nil {
		return err
	}
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	session.State.SetText(field.Key(entry.Name), text)
	if err := s.opts.Sessions.Save(ctx, session); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "checklist.note.save", map[string]any{
		"session_id": sessionID,
		"field":      string(field),
		"entry":      entry.Name,
		"length":     len(text),
	})
	return nil
}

// SetGoals writes the non-nil goal fields of a funnel, clamped to their bounds.
func (s *Service) SetGoals(ctx context.Context, sessionID, funnel string, input GoalInput) (GoalSet, error) {
	entry, err := Entry(s.opts.Catalog, KindFunnel, funnel)
	if err != nil {
		return GoalSet{}, err
	}
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return GoalSet{}, err
	}
	goals := session.State.ApplyGoals(entry.Name, input)
	if err := s.opts.Sessions.Save(ctx, session); err != nil {
		return GoalSet{}, err
	}
	s.recordTelemetry(ctx, "checklist.goals.set", map[string]any{
		"session_id": sessionID,
		"funnel":     entry.Name,
	})
	return goals, nil
}

// SelectedFunnels returns the checked funnels of the session in catalog order.
func (s *Service) SelectedFunnels(ctx context.Context, sessionID string) ([]CatalogEntry, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return SelectedFunnels(s.opts.Catalog, session.State), nil
}

// SelectedFeatures returns the checked features of the session in catalog order.
func (s *Service) SelectedFeatures(ctx context.Context, sessionID string) ([]CatalogEntry, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return SelectedFeatures(s.opts.Catalog, session.State), nil
}

// Section builds the view of one section for the session.
func (s *Service) Section(ctx context.Context, sessionID string, section Section) (SectionView, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return SectionView{}, err
	}
	view, err := BuildSection(s.opts.Catalog, session.State, section)
	if err != nil {
		return SectionView{}, err
	}
	if view.Summary != nil {
		s.attachChart(ctx, view.Summary)
	}
	s.recordTelemetry(ctx, "checklist.section.render", map[string]any{
		"session_id": sessionID,
		"section":    view.Slug,
	})
	return view, nil
}

// Summary builds the summary projection for the session.
func (s *Service) Summary(ctx context.Context, sessionID string) (SummaryView, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return SummaryView{}, err
	}
	summary := BuildSummary(s.opts.Catalog, session.State)
	s.attachChart(ctx, &summary)
	return summary, nil
}

// EndSession drops the session and all of its form state.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	store, err := s.sessionStore()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "checklist.session.end", map[string]any{"session_id": sessionID})
	return nil
}

func (s *Service) attachChart(ctx context.Context, summary *SummaryView) {
	if summary.Empty || s.opts.Charts == nil {
		return
	}
	html, err := s.opts.Charts.RenderGoals(summary.Goals)
	if err != nil {
		s.recordTelemetry(ctx, "checklist.chart.error", map[string]any{"error": err.Error()})
		return
	}
	summary.ChartHTML = html
}

func (s *Service) sessionStore() (SessionStore, error) {
	if s.opts.Sessions == nil {
		return nil, errMissingSessionStore
	}
	return s.opts.Sessions, nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
