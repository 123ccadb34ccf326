package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

// SectionInput identifies the section to project for a session.
type SectionInput struct {
	SessionID string
	Section   checklist.Section
}

type sectionService interface {
	Section(ctx context.Context, sessionID string, section checklist.Section) (checklist.SectionView, error)
}

// SectionQuery executes read-only section resolution.
type SectionQuery struct {
	service sectionService
}

// NewSectionQuery builds the query.
func NewSectionQuery(service sectionService) *SectionQuery {
	return &SectionQuery{service: service}
}

var _ gocommand.Querier[SectionInput, checklist.SectionView] = (*SectionQuery)(nil)

// Query resolves the section view.
func (q *SectionQuery) Query(ctx context.Context, input SectionInput) (checklist.SectionView, error) {
	return q.service.Section(ctx, input.SessionID, input.Section)
}
