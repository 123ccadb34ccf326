package checklist

// Widget keys are derived from the entry name plus a role suffix so the same
// widget always maps to the same slot in the form state.

// SelectionKey is the key of an entry's checkbox.
func SelectionKey(name string) string { return name }

// FunnelPracticesKey is the best-practices text area of the Funnel Types section.
func FunnelPracticesKey(funnel string) string { return funnel + "_best_practices" }

// FeatureTipsKey is the implementation-tips text area of the Checklist Features section.
func FeatureTipsKey(feature string) string { return feature + "_tips" }

// FunnelNotesKey is the per-funnel note of the Notes & Tips section.
func FunnelNotesKey(funnel string) string { return funnel + "_notes" }

// FeaturePracticesKey is the per-feature tip of the Notes & Tips section.
func FeaturePracticesKey(feature string) string { return feature + "_best_practices" }

// ConversionRateKey is the target conversion rate input of a funnel.
func ConversionRateKey(funnel string) string { return funnel + "_conversion_rate" }

// LeadsTargetKey is the monthly leads target input of a funnel.
func LeadsTargetKey(funnel string) string { return funnel + "_leads_target" }

// RevenueGoalKey is the revenue goal input of a funnel.
func RevenueGoalKey(funnel string) string { return funnel + "_revenue_goal" }

// FunnelPracticesPlaceholder seeds the Funnel Types text area.
func FunnelPracticesPlaceholder(funnel string) string {
	return "Write best practices here for " + funnel
}

// FeatureTipsPlaceholder seeds the Checklist Features text area.
func FeatureTipsPlaceholder(feature string) string {
	return "Write implementation tips here for " + feature
}

// FunnelNotesPlaceholder seeds the Notes & Tips funnel note.
func FunnelNotesPlaceholder(funnel string) string {
	return "Write additional notes for " + funnel
}

// FeaturePracticesPlaceholder seeds the Notes & Tips feature tip.
func FeaturePracticesPlaceholder(feature string) string {
	return "Write best practices for " + feature
}

// NoteField identifies one of the free-text widgets.
type NoteField string

const (
	NoteFunnelPractices  NoteField = "funnel_best_practices"
	NoteFeatureTips      NoteField = "feature_tips"
	NoteFunnelNotes      NoteField = "funnel_notes"
	NoteFeaturePractices NoteField = "feature_best_practices"
)

// Kind returns the catalog the note field belongs to.
func (f NoteField) Kind() EntryKind {
	switch f {
	case NoteFeatureTips, NoteFeaturePractices:
		return KindFeature
	default:
		return KindFunnel
	}
}

// Key returns the store key of the field for the entry.
func (f NoteField) Key(name string) string {
	switch f {
	case NoteFunnelPractices:
		return FunnelPracticesKey(name)
	case NoteFeatureTips:
		return FeatureTipsKey(name)
	case NoteFunnelNotes:
		return FunnelNotesKey(name)
	case NoteFeaturePractices:
		return FeaturePracticesKey(name)
	}
	return ""
}

// Placeholder returns the default text of the field for the entry.
func (f NoteField) Placeholder(name string) string {
	switch f {
	case NoteFunnelPractices:
		return FunnelPracticesPlaceholder(name)
	case NoteFeatureTips:
		return FeatureTipsPlaceholder(name)
	case NoteFunnelNotes:
		return FunnelNotesPlaceholder(name)
	case NoteFeaturePractices:
		return FeaturePracticesPlaceholder(name)
	}
	return ""
}

// Valid reports whether the field is one of the known note fields.
func (f NoteField) Valid() bool {
	return f.Key("x") != ""
}
