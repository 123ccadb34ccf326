package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSectionFunnelTypes(t *testing.T) {
	reg := NewRegistry()
	state := NewFormState()
	state.SetSelected("Event Funnel", true)
	state.SetText(FunnelPracticesKey("Event Funnel"), "Send three reminders.")

	view, err := BuildSection(reg, state, SectionFunnelTypes)
	require.NoError(t, err)
	assert.Equal(t, "Main Funnel Types", view.Header)
	require.Len(t, view.Toggles, 11)

	for _, toggle := range view.Toggles {
		assert.Equal(t, KindFunnel, toggle.Kind)
		if toggle.Entry.Name != "Event Funnel" {
			assert.False(t, toggle.Checked)
			assert.Nil(t, toggle.Note)
			continue
		}
		assert.True(t, toggle.Checked)
		require.NotNil(t, toggle.Note)
		assert.Equal(t, "Event Funnel_best_practices", toggle.Note.Key)
		assert.Equal(t, "Event Funnel Best Practices", toggle.Note.Label)
		assert.Equal(t, "Send three reminders.", toggle.Note.Value)
	}
}

func TestBuildSectionFeaturesUsesTipsKey(t *testing.T) {
	reg := NewRegistry()
	state := NewFormState()
	state.SetSelected("CTA", true)

	view, err := BuildSection(reg, state, SectionFeatures)
	require.NoError(t, err)
	var note *NoteView
	for _, toggle := range view.Toggles {
		if toggle.Entry.Name == "CTA" {
			note = toggle.Note
		}
	}
	require.NotNil(t, note)
	assert.Equal(t, "CTA_tips", note.Key)
	assert.Equal(t, "Implementation Tips for CTA", note.Label)
	assert.Equal(t, "Write implementation tips here for CTA", note.Value)
	assert.False(t, note.Touched)
}

func TestBuildSectionGoalsOnlyForSelectedFunnels(t *testing.T) {
	reg := NewRegistry()
	state := NewFormState()
	state.SetSelected("Software Funnel", true)
	state.SetSelected("Affiliate Funnel", true)
	state.SetLeadsTarget("Software Funnel", 250)

	view, err := BuildSection(reg, state, SectionGoals)
	require.NoError(t, err)
	require.Len(t, view.Goals, 2)
	assert.Equal(t, "Affiliate Funnel", view.Goals[0].Funnel)
	assert.Equal(t, "Software Funnel", view.Goals[1].Funnel)

	goals := view.Goals[1]
	assert.Equal(t, "Goals for Software Funnel", goals.Heading)
	assert.Equal(t, "Target Conversion Rate for Software Funnel", goals.ConversionRate.Label)
	assert.Equal(t, "100", goals.ConversionRate.Max)
	assert.Equal(t, "0.1", goals.ConversionRate.Step)
	assert.False(t, goals.ConversionRate.Set)
	assert.Equal(t, "250", goals.LeadsTarget.Value)
	assert.True(t, goals.LeadsTarget.Integer)
	assert.Equal(t, "10", goals.LeadsTarget.Step)
	assert.Equal(t, "Revenue Goal for Software Funnel ($)", goals.RevenueGoal.Label)
	assert.Equal(t, "100", goals.RevenueGoal.Step)
	assert.Empty(t, goals.RevenueGoal.Max)
}

func TestBuildSectionNotes(t *testing.T) {
	reg := NewRegistry()
	state := NewFormState()
	state.SetSelected("Membership Funnel", true)
	state.SetSelected("Themes", true)

	view, err := BuildSection(reg, state, SectionNotes)
	require.NoError(t, err)
	require.Len(t, view.Notes, 1)
	require.Len(t, view.Tips, 1)

	assert.Equal(t, "Membership Funnel_notes", view.Notes[0].Key)
	assert.Equal(t, "Notes for Membership Funnel", view.Notes[0].Heading)
	assert.Equal(t, "Write additional notes for Membership Funnel", view.Notes[0].Placeholder)
	assert.Equal(t, "Themes_best_practices", view.Tips[0].Key)
	assert.Equal(t, "Tips for Themes", view.Tips[0].Heading)
	assert.Equal(t, "Write best practices for Themes", view.Tips[0].Placeholder)
}

func TestBuildSectionFAQ(t *testing.T) {
	view, err := BuildSection(NewRegistry(), nil, SectionFAQ)
	require.NoError(t, err)
	assert.Len(t, view.FAQ, 3)
	require.Len(t, view.Resources, 4)
	assert.Equal(t, "ClickFunnels Blog", view.Resources[0].Name)
	assert.Equal(t, "https://blog.clickfunnels.com", view.Resources[0].URL)
}

func TestBuildSectionUnknown(t *testing.T) {
	_, err := BuildSection(NewRegistry(), NewFormState(), Section("Pricing"))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "45.5", FormatNumber(45.5))
	assert.Equal(t, "5000", FormatNumber(5000))
	assert.Equal(t, "0.1", FormatNumber(0.1))
}
