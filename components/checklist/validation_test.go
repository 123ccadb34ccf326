package checklist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalPayloadValidator(t *testing.T) {
	validator := NewJSONSchemaGoalValidator()

	valid := map[string]any{
		"session":         "abc",
		"funnel":          "Course Funnel",
		"conversion_rate": 45.5,
		"leads_target":    json.Number("200"),
		"revenue_goal":    nil,
	}
	require.NoError(t, validator.Validate(valid))

	invalid := []map[string]any{
		{"conversion_rate": 10},
		{"funnel": "Course Funnel", "conversion_rate": "ten"},
		{"funnel": "Course Funnel", "leads_target": 1.5},
		{"funnel": "Course Funnel", "budget": 100},
	}
	for _, payload := range invalid {
		err := validator.Validate(payload)
		assert.ErrorIs(t, err, ErrInvalidGoal, "%v", payload)
	}
}

func TestGoalInputFromPayload(t *testing.T) {
	funnel, input, err := GoalInputFromPayload(map[string]any{
		"funnel":          " Event Funnel ",
		"conversion_rate": json.Number("12.5"),
		"leads_target":    json.Number("40"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Event Funnel", funnel)
	require.NotNil(t, input.ConversionRate)
	assert.Equal(t, 12.5, *input.ConversionRate)
	require.NotNil(t, input.LeadsTarget)
	assert.Equal(t, 40, *input.LeadsTarget)
	assert.Nil(t, input.RevenueGoal)

	_, _, err = GoalInputFromPayload(map[string]any{"funnel": "x", "revenue_goal": "lots"})
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestParseGoalForm(t *testing.T) {
	values := map[string]string{
		FieldConversionRate: "45.5",
		FieldLeadsTarget:    "200",
		FieldRevenueGoal:    "",
	}
	input, err := ParseGoalForm(func(k string) string { return values[k] })
	require.NoError(t, err)
	assert.Equal(t, 45.5, *input.ConversionRate)
	assert.Equal(t, 200, *input.LeadsTarget)
	assert.Nil(t, input.RevenueGoal)

	for _, bad := range []map[string]string{
		{FieldConversionRate: "abc"},
		{FieldLeadsTarget: "2.5"},
		{FieldRevenueGoal: "NaN"},
	} {
		_, err := ParseGoalForm(func(k string) string { return bad[k] })
		assert.ErrorIs(t, err, ErrInvalidGoal)
	}
}

func TestParseToggleAndKind(t *testing.T) {
	on, err := ParseToggle("on")
	require.NoError(t, err)
	assert.True(t, on)
	off, err := ParseToggle("")
	require.NoError(t, err)
	assert.False(t, off)
	_, err = ParseToggle("maybe")
	assert.Error(t, err)

	kind, err := ParseEntryKind("Feature")
	require.NoError(t, err)
	assert.Equal(t, KindFeature, kind)
	_, err = ParseEntryKind("goal")
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

func TestLeadsTargetOutOfIntRange(t *testing.T) {
	values := map[string]string{FieldLeadsTarget: "1e20"}
	_, err := ParseGoalForm(func(k string) string { return values[k] })
	require.ErrorIs(t, err, ErrInvalidGoal)
	assert.Contains(t, err.Error(), "exceeds")

	_, _, err = GoalInputFromPayload(map[string]any{
		"funnel":       "Course Funnel",
		"leads_target": json.Number("1e20"),
	})
	require.ErrorIs(t, err, ErrInvalidGoal)
	assert.Contains(t, err.Error(), "exceeds")
	assert.NotContains(t, err.Error(), "must be an integer")

	values[FieldLeadsTarget] = "-50"
	input, err := ParseGoalForm(func(k string) string { return values[k] })
	require.NoError(t, err)
	assert.Equal(t, 0, *input.LeadsTarget)
}

func TestGoalPayloadErrorsOmitSchemaLocation(t *testing.T) {
	err := NewJSONSchemaGoalValidator().Validate(map[string]any{
		"funnel":       "Course Funnel",
		"leads_target": 2.5,
	})
	require.ErrorIs(t, err, ErrInvalidGoal)
	assert.Contains(t, err.Error(), "/leads_target")
	assert.NotContains(t, err.Error(), "file://")
	assert.NotContains(t, err.Error(), "#/properties")
}
