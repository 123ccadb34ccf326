package queries

import (
	"context"
	"testing"

	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

type stubService struct {
	lastSession string
	lastSection checklist.Section
}

func (s *stubService) Section(_ context.Context, sessionID string, section checklist.Section) (checklist.SectionView, error) {
	s.lastSession = sessionID
	s.lastSection = section
	return checklist.SectionView{Section: section, Slug: section.Slug()}, nil
}

func (s *stubService) Summary(_ context.Context, sessionID string) (checklist.SummaryView, error) {
	s.lastSession = sessionID
	return checklist.SummaryView{Empty: true, Message: checklist.NoSelectionsMessage}, nil
}

func TestSectionQuery(t *testing.T) {
	service := &stubService{}
	view, err := NewSectionQuery(service).Query(context.Background(), SectionInput{SessionID: "s1", Section: checklist.SectionNotes})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if view.Slug != "notes-tips" {
		t.Fatalf("expected notes slug, got %q", view.Slug)
	}
	if service.lastSession != "s1" || service.lastSection != checklist.SectionNotes {
		t.Fatalf("unexpected query arguments %q %q", service.lastSession, service.lastSection)
	}
}

func TestSummaryQuery(t *testing.T) {
	service := &stubService{}
	summary, err := NewSummaryQuery(service).Query(context.Background(), SummaryInput{SessionID: "s2"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if !summary.Empty || len(summary.Lines()) != 1 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestSummaryQueryAgainstService(t *testing.T) {
	ctx := context.Background()
	service := checklist.NewService(checklist.Options{})
	session, _, err := service.ResolveSession(ctx, "")
	if err != nil {
		t.Fatalf("ResolveSession returned error: %v", err)
	}
	if err := service.Toggle(ctx, session.ID, checklist.KindFeature, "CTA", true); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	summary, err := NewSummaryQuery(service).Query(ctx, SummaryInput{SessionID: session.ID})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(summary.Features) != 1 || summary.Features[0] != "CTA" {
		t.Fatalf("expected CTA feature, got %v", summary.Features)
	}
}
