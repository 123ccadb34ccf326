package checklist

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsChartSkipsUnsetGoals(t *testing.T) {
	chart := NewGoalsChart()
	html, err := chart.RenderGoals([]FunnelGoalSummary{{Funnel: "Event Funnel"}})
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestGoalsChartRendersBar(t *testing.T) {
	state := NewFormState()
	state.SetSelected("Course Funnel", true)
	state.SetConversionRate("Course Funnel", 45.5)
	state.SetRevenueGoal("Course Funnel", 5000)
	summary := BuildSummary(NewRegistry(), state)

	chart := NewGoalsChart(WithChartTheme(types.ThemeWesteros))
	html, err := chart.RenderGoals(summary.Goals)
	require.NoError(t, err)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Course Funnel")
	assert.Contains(t, html, "Monthly Leads Target")
}

type countingCache struct {
	keys []string
}

func (c *countingCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	c.keys = append(c.keys, key)
	return render()
}

func TestGoalsChartCacheKeyFollowsContent(t *testing.T) {
	cache := &countingCache{}
	chart := NewGoalsChart(WithChartCache(cache))
	rate := 10.0
	other := 20.0

	_, err := chart.RenderGoals([]FunnelGoalSummary{{Funnel: "A", Raw: GoalSet{ConversionRate: &rate}}})
	require.NoError(t, err)
	_, err = chart.RenderGoals([]FunnelGoalSummary{{Funnel: "A", Raw: GoalSet{ConversionRate: &rate}}})
	require.NoError(t, err)
	_, err = chart.RenderGoals([]FunnelGoalSummary{{Funnel: "A", Raw: GoalSet{ConversionRate: &other}}})
	require.NoError(t, err)

	require.Len(t, cache.keys, 3)
	assert.Equal(t, cache.keys[0], cache.keys[1])
	assert.NotEqual(t, cache.keys[0], cache.keys[2])
}
