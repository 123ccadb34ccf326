package checklist

import "strconv"

// SectionView is everything needed to render one section. Only the fields of
// the current section are populated.
type SectionView struct {
	Section   Section           `json:"section"`
	Slug      string            `json:"slug"`
	Header    string            `json:"header"`
	Blurb     string            `json:"blurb,omitempty"`
	Toggles   []EntryToggleView `json:"toggles,omitempty"`
	Goals     []GoalInputsView  `json:"goals,omitempty"`
	Notes     []NoteView        `json:"notes,omitempty"`
	Tips      []NoteView        `json:"tips,omitempty"`
	FAQ       []FAQItem         `json:"faq,omitempty"`
	Resources []Resource        `json:"resources,omitempty"`
	Summary   *SummaryView      `json:"summary,omitempty"`
}

// EntryToggleView is a catalog checkbox plus its text area when checked.
type EntryToggleView struct {
	Kind    EntryKind    `json:"kind"`
	Entry   CatalogEntry `json:"entry"`
	Label   string       `json:"label"`
	Checked bool         `json:"checked"`
	Note    *NoteView    `json:"note,omitempty"`
}

// NoteView is a free-text widget.
type NoteView struct {
	Field       NoteField `json:"field"`
	Entry       string    `json:"entry"`
	Heading     string    `json:"heading,omitempty"`
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Value       string    `json:"value"`
	Placeholder string    `json:"placeholder"`
	Touched     bool      `json:"touched"`
}

// GoalInputsView groups the three numeric inputs of a selected funnel.
type GoalInputsView struct {
	Funnel         string          `json:"funnel"`
	Heading        string          `json:"heading"`
	ConversionRate NumberInputView `json:"conversion_rate"`
	LeadsTarget    NumberInputView `json:"leads_target"`
	RevenueGoal    NumberInputView `json:"revenue_goal"`
}

// NumberInputView is a bounded numeric stepper. Max is empty when unbounded.
type NumberInputView struct {
	Name    string `json:"name"`
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Set     bool   `json:"set"`
	Min     string `json:"min"`
	Max     string `json:"max,omitempty"`
	Step    string `json:"step"`
	Integer bool   `json:"integer"`
}

// BuildSection projects the form state onto the requested section.
func BuildSection(reg CatalogRegistry, state *FormState, section Section) (SectionView, error) {
	if _, err := ParseSection(string(section)); err != nil {
		return SectionView{}, err
	}
	if state == nil {
		state = NewFormState()
	}
	view := SectionView{
		Section: section,
		Slug:    section.Slug(),
		Header:  section.Header(),
		Blurb:   section.Blurb(),
	}
	switch section {
	case SectionFunnelTypes:
		view.Toggles = toggleViews(KindFunnel, reg.Funnels(), state, NoteFunnelPractices)
	case SectionFeatures:
		view.Toggles = toggleViews(KindFeature, reg.Features(), state, NoteFeatureTips)
	case SectionGoals:
		view.Goals = goalViews(SelectedFunnels(reg, state), state)
	case SectionNotes:
		for _, funnel := range SelectedFunnels(reg, state) {
			view.Notes = append(view.Notes, noteView(NoteFunnelNotes, funnel.Name, state))
		}
		for _, feature := range SelectedFeatures(reg, state) {
			view.Tips = append(view.Tips, noteView(NoteFeaturePractices, feature.Name, state))
		}
	case SectionFAQ:
		view.FAQ = DefaultFAQ()
		view.Resources = DefaultResources()
	case SectionSummary:
		summary := BuildSummary(reg, state)
		view.Summary = &summary
	}
	return view, nil
}

// SelectedFunnels returns the checked funnels in catalog order.
func SelectedFunnels(reg CatalogRegistry, state *FormState) []CatalogEntry {
	return selected(reg.Funnels(), state)
}

// SelectedFeatures returns the checked features in catalog order.
func SelectedFeatures(reg CatalogRegistry, state *FormState) []CatalogEntry {
	return selected(reg.Features(), state)
}

func selected(entries []CatalogEntry, state *FormState) []CatalogEntry {
	var out []CatalogEntry
	for _, entry := range entries {
		if state.Selected(entry.Name) {
			out = append(out, entry)
		}
	}
	return out
}

func toggleViews(kind EntryKind, entries []CatalogEntry, state *FormState, field NoteField) []EntryToggleView {
	views := make([]EntryToggleView, 0, len(entries))
	for _, entry := range entries {
		toggle := EntryToggleView{
			Kind:    kind,
			Entry:   entry,
			Label:   entry.Label(),
			Checked: state.Selected(entry.Name),
		}
		if toggle.Checked {
			note := noteView(field, entry.Name, state)
			toggle.Note = &note
		}
		views = append(views, toggle)
	}
	return views
}

func noteView(field NoteField, name string, state *FormState) NoteView {
	key := field.Key(name)
	placeholder := field.Placeholder(name)
	view := NoteView{
		Field:       field,
		Entry:       name,
		Key:         key,
		Value:       state.Text(key, placeholder),
		Placeholder: placeholder,
		Touched:     state.Has(key),
	}
	switch field {
	case NoteFunnelPractices:
		view.Label = name + " Best Practices"
	case NoteFeatureTips:
		view.Label = "Implementation Tips for " + name
	case NoteFunnelNotes:
		view.Heading = "Notes for " + name
		view.Label = "Add notes or reminders for " + name
	case NoteFeaturePractices:
		view.Heading = "Tips for " + name
		view.Label = "Best practices or strategies for " + name
	}
	return view
}

func goalViews(funnels []CatalogEntry, state *FormState) []GoalInputsView {
	views := make([]GoalInputsView, 0, len(funnels))
	for _, funnel := range funnels {
		goals := state.Goals(funnel.Name)
		view := GoalInputsView{
			Funnel:  funnel.Name,
			Heading: "Goals for " + funnel.Name,
			ConversionRate: NumberInputView{
				Name:  "conversion_rate",
				Key:   ConversionRateKey(funnel.Name),
				Label: "Target Conversion Rate for " + funnel.Name,
				Min:   FormatNumber(MinConversionRate),
				Max:   FormatNumber(MaxConversionRate),
				Step:  FormatNumber(ConversionRateStep),
			},
			LeadsTarget: NumberInputView{
				Name:    "leads_target",
				Key:     LeadsTargetKey(funnel.Name),
				Label:   "Monthly Leads Target for " + funnel.Name,
				Min:     "0",
				Step:    strconv.Itoa(LeadsTargetStep),
				Integer: true,
			},
			RevenueGoal: NumberInputView{
				Name:  "revenue_goal",
				Key:   RevenueGoalKey(funnel.Name),
				Label: "Revenue Goal for " + funnel.Name + " ($)",
				Min:   "0",
				Step:  FormatNumber(RevenueGoalStep),
			},
		}
		if goals.ConversionRate != nil {
			view.ConversionRate.Value = FormatNumber(*goals.ConversionRate)
			view.ConversionRate.Set = true
		}
		if goals.LeadsTarget != nil {
			view.LeadsTarget.Value = strconv.Itoa(*goals.LeadsTarget)
			view.LeadsTarget.Set = true
		}
		if goals.RevenueGoal != nil {
			view.RevenueGoal.Value = FormatNumber(*goals.RevenueGoal)
			view.RevenueGoal.Set = true
		}
		views = append(views, view)
	}
	return views
}

// FormatNumber renders a float in its shortest exact form (45.5, 5000).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
