package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

// SummaryInput identifies the session to summarize.
type SummaryInput struct {
	SessionID string
}

type summaryService interface {
	Summary(ctx context.Context, sessionID string) (checklist.SummaryView, error)
}

// SummaryQuery returns the read-back projection of a session.
type SummaryQuery struct {
	service summaryService
}

// NewSummaryQuery builds the query.
func NewSummaryQuery(service summaryService) *SummaryQuery {
	return &SummaryQuery{service: service}
}

var _ gocommand.Querier[SummaryInput, checklist.SummaryView] = (*SummaryQuery)(nil)

// Query builds the summary.
func (q *SummaryQuery) Query(ctx context.Context, input SummaryInput) (checklist.SummaryView, error) {
	return q.service.Summary(ctx, input.SessionID)
}
