package checklist

import (
	"context"
	"errors"
)

var (
	// ErrUnknownSection is returned when a section name or slug is not part of the navigation.
	ErrUnknownSection = errors.New("checklist: unknown section")
	// ErrUnknownEntry is returned when a funnel or feature name is not in the catalog.
	ErrUnknownEntry = errors.New("checklist: unknown catalog entry")
	// ErrSessionNotFound is returned when a session id does not resolve to a live session.
	ErrSessionNotFound = errors.New("checklist: session not found")
	// ErrInvalidGoal is returned when a goal value cannot be parsed as a number.
	ErrInvalidGoal = errors.New("checklist: invalid goal value")
)

// SessionStore keeps one FormState per visitor session. Implementations must be
// safe for concurrent use.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Create(ctx context.Context) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// CatalogRegistry exposes the ordered funnel and feature catalogs.
type CatalogRegistry interface {
	RegisterFunnel(entry CatalogEntry) error
	RegisterFeature(entry CatalogEntry) error
	Funnels() []CatalogEntry
	Features() []CatalogEntry
	Funnel(name string) (CatalogEntry, bool)
	Feature(name string) (CatalogEntry, bool)
}

// EntryKind distinguishes the two catalogs.
type EntryKind string

const (
	KindFunnel  EntryKind = "funnel"
	KindFeature EntryKind = "feature"
)

// CatalogEntry is an immutable catalog item.
type CatalogEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Code        string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Label is the toggle label shown next to the checkbox.
func (e CatalogEntry) Label() string {
	return e.Name + " - " + e.Description
}

// FAQItem is a static question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Resource is a named outbound link.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GoalSet holds the three goals of a funnel. Nil means the goal was never set.
type GoalSet struct {
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
	LeadsTarget    *int     `json:"leads_target,omitempty"`
	RevenueGoal    *float64 `json:"revenue_goal,omitempty"`
}

// IsZero reports whether no goal has been set.
func (g GoalSet) IsZero() bool {
	return g.ConversionRate == nil && g.LeadsTarget == nil && g.RevenueGoal == nil
}

// GoalInput carries goal updates. Nil fields are left untouched.
type GoalInput struct {
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
	LeadsTarget    *int     `json:"leads_target,omitempty"`
	RevenueGoal    *float64 `json:"revenue_goal,omitempty"`
}
