package checklist

import (
	"bytes"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	defaultChartHeight = "360px"
	goalsChartTitle    = "Funnel Goals"
)

// GoalsChartRenderer turns the goal summaries into embeddable chart HTML.
// An empty string means there is nothing to plot.
type GoalsChartRenderer interface {
	RenderGoals(goals []FunnelGoalSummary) (string, error)
}

// GoalsChart renders a go-echarts bar chart with one group per funnel.
type GoalsChart struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// GoalsChartOption customizes chart rendering.
type GoalsChartOption func(*GoalsChart)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) GoalsChartOption {
	return func(c *GoalsChart) {
		c.cache = cache
	}
}

// WithChartTheme sets the echarts theme (defaults to Westeros).
func WithChartTheme(theme string) GoalsChartOption {
	return func(c *GoalsChart) {
		c.theme = theme
	}
}

// WithChartAssetsHost rewrites the assets host so the echarts script loads from a CDN.
func WithChartAssetsHost(host string) GoalsChartOption {
	return func(c *GoalsChart) {
		c.assetsHost = host
	}
}

// NewGoalsChart builds the default chart renderer.
func NewGoalsChart(options ...GoalsChartOption) *GoalsChart {
	c := &GoalsChart{
		cache: NewChartCache(5 * time.Minute),
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// RenderGoals plots every funnel that has at least one goal set. Unset goals
// are drawn as gaps.
func (c *GoalsChart) RenderGoals(goals []FunnelGoalSummary) (string, error) {
	var plotted []FunnelGoalSummary
	for _, goal := range goals {
		if !goal.Raw.IsZero() {
			plotted = append(plotted, goal)
		}
	}
	if len(plotted) == 0 {
		return "", nil
	}
	render := func() (string, error) {
		return c.render(plotted)
	}
	if c.cache == nil {
		return render()
	}
	return c.cache.GetOrRender("goals:"+c.theme+":"+contentHash(rawGoals(plotted)), render)
}

func (c *GoalsChart) render(goals []FunnelGoalSummary) (string, error) {
	names := make([]string, len(goals))
	rates := make([]opts.BarData, len(goals))
	leads := make([]opts.BarData, len(goals))
	revenue := make([]opts.BarData, len(goals))
	for i, goal := range goals {
		names[i] = goal.Funnel
		rates[i] = barValue(goal.Funnel, floatOrGap(goal.Raw.ConversionRate))
		leads[i] = barValue(goal.Funnel, intOrGap(goal.Raw.LeadsTarget))
		revenue[i] = barValue(goal.Funnel, floatOrGap(goal.Raw.RevenueGoal))
	}

	initOpts := opts.Initialization{
		Theme:  c.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if c.assetsHost != "" {
		initOpts.AssetsHost = c.assetsHost
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: goalsChartTitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("Target Conversion Rate (%)", rates).
		AddSeries("Monthly Leads Target", leads).
		AddSeries("Revenue Goal ($)", revenue)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func barValue(name string, value any) opts.BarData {
	return opts.BarData{Name: name, Value: value}
}

// echarts treats "-" as a missing data point.
func floatOrGap(v *float64) any {
	if v == nil {
		return "-"
	}
	return *v
}

func intOrGap(v *int) any {
	if v == nil {
		return "-"
	}
	return *v
}

func rawGoals(goals []FunnelGoalSummary) map[string]GoalSet {
	out := make(map[string]GoalSet, len(goals))
	for _, goal := range goals {
		out[goal.Funnel] = goal.Raw
	}
	return out
}
