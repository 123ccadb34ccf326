package checklist

import "strconv"

const (
	// NotSet replaces a goal that was never entered.
	NotSet = "Not set"
	// NoSelectionsMessage is the only line of an empty summary.
	NoSelectionsMessage = "No selections made yet. Use the other tabs to choose funnel types, features, and set goals."
	// NoFunnelsMessage and NoFeaturesMessage fill an empty subsection.
	NoFunnelsMessage  = "No funnel types selected."
	NoFeaturesMessage = "No features selected."
)

// Summary subsection headings.
const (
	SummaryFunnelsHeading  = "Selected Funnel Types"
	SummaryFeaturesHeading = "Selected Checklist Features"
	SummaryGoalsHeading    = "Funnel Goals Summary"
)

// SummaryView is the read-back projection of the form state.
type SummaryView struct {
	Empty     bool                `json:"empty"`
	Message   string              `json:"message,omitempty"`
	Funnels   []string            `json:"funnels,omitempty"`
	Features  []string            `json:"features,omitempty"`
	Goals     []FunnelGoalSummary `json:"goals,omitempty"`
	ChartHTML string              `json:"chart_html,omitempty"`
}

// FunnelGoalSummary holds the formatted goals of one selected funnel.
type FunnelGoalSummary struct {
	Funnel         string  `json:"funnel"`
	Heading        string  `json:"heading"`
	ConversionRate string  `json:"conversion_rate"`
	LeadsTarget    string  `json:"leads_target"`
	RevenueGoal    string  `json:"revenue_goal"`
	Raw            GoalSet `json:"-"`
}

// BuildSummary lists the selected funnels and features in catalog order along
// with each selected funnel's goals.
func BuildSummary(reg CatalogRegistry, state *FormState) SummaryView {
	if state == nil {
		state = NewFormState()
	}
	funnels := SelectedFunnels(reg, state)
	features := SelectedFeatures(reg, state)
	if len(funnels) == 0 && len(features) == 0 {
		return SummaryView{Empty: true, Message: NoSelectionsMessage}
	}
	view := SummaryView{}
	for _, funnel := range funnels {
		view.Funnels = append(view.Funnels, funnel.Name)
		view.Goals = append(view.Goals, summarizeGoals(funnel.Name, state.Goals(funnel.Name)))
	}
	for _, feature := range features {
		view.Features = append(view.Features, feature.Name)
	}
	return view
}

func summarizeGoals(funnel string, goals GoalSet) FunnelGoalSummary {
	out := FunnelGoalSummary{
		Funnel:         funnel,
		Heading:        funnel + " Goals",
		ConversionRate: NotSet,
		LeadsTarget:    NotSet,
		RevenueGoal:    NotSet,
		Raw:            goals,
	}
	if goals.ConversionRate != nil {
		out.ConversionRate = FormatNumber(*goals.ConversionRate)
	}
	if goals.LeadsTarget != nil {
		out.LeadsTarget = strconv.Itoa(*goals.LeadsTarget)
	}
	if goals.RevenueGoal != nil {
		out.RevenueGoal = FormatNumber(*goals.RevenueGoal)
	}
	return out
}

// Lines renders the summary as markdown-style text lines.
func (v SummaryView) Lines() []string {
	if v.Empty {
		return []string{v.Message}
	}
	lines := []string{"## " + SummaryFunnelsHeading}
	if len(v.Funnels) == 0 {
		lines = append(lines, NoFunnelsMessage)
	}
	for _, name := range v.Funnels {
		lines = append(lines, "- **"+name+"**")
	}
	lines = append(lines, "## "+SummaryFeaturesHeading)
	if len(v.Features) == 0 {
		lines = append(lines, NoFeaturesMessage)
	}
	for _, name := range v.Features {
		lines = append(lines, "- **"+name+"**")
	}
	lines = append(lines, "## "+SummaryGoalsHeading)
	for _, goal := range v.Goals {
		lines = append(lines, goal.Lines()...)
	}
	return lines
}

// Lines renders the goal block of one funnel.
func (g FunnelGoalSummary) Lines() []string {
	return []string{
		"### " + g.Heading,
		"- Target Conversion Rate: " + g.ConversionRate,
		"- Monthly Leads Target: " + g.LeadsTarget,
		"- Revenue Goal: $" + g.RevenueGoal,
	}
}
