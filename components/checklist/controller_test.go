package checklist

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerRenderSection(t *testing.T) {
	service, _, _, id := newTestService(t)
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{
		Service:  service,
		Renderer: renderer,
		BasePath: "/checklist",
	})

	var buf bytes.Buffer
	require.NoError(t, controller.RenderSection(context.Background(), id, SectionGoals, &buf))
	assert.Equal(t, "checklist.html", renderer.lastTemplate)
	assert.NotZero(t, buf.Len())

	payload := renderer.lastPayload
	require.NotNil(t, payload)
	assert.Equal(t, Title, payload["title"])
	assert.Equal(t, id, payload["session_id"])
	assert.Equal(t, "/checklist", payload["base_path"])
	assert.Len(t, payload["next_steps"], 3)

	nav, ok := payload["nav"].([]NavItem)
	require.True(t, ok)
	require.Len(t, nav, 6)
	assert.True(t, nav[2].Active)
	assert.Equal(t, "funnel-goals", nav[2].Slug)
	assert.False(t, nav[0].Active)
}

func TestControllerSectionPayloadSummaryLines(t *testing.T) {
	service, _, _, id := newTestService(t)
	controller := NewController(ControllerOptions{Service: service})

	payload, err := controller.SectionPayload(context.Background(), id, SectionSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{NoSelectionsMessage}, payload["summary_lines"])
}

func TestControllerRequiresDependencies(t *testing.T) {
	controller := NewController(ControllerOptions{})
	_, err := controller.SectionPayload(context.Background(), "id", SectionFAQ)
	assert.Error(t, err)
	assert.Error(t, controller.RenderSection(context.Background(), "id", SectionFAQ, &bytes.Buffer{}))
}
