package checklist

import (
	"fmt"
	"strings"
)

// Section identifies one of the navigation choices.
type Section string

const (
	SectionFunnelTypes Section = "Funnel Types"
	SectionFeatures    Section = "Checklist Features"
	SectionGoals       Section = "Funnel Goals"
	SectionNotes       Section = "Notes & Tips"
	SectionFAQ         Section = "FAQ & Resources"
	SectionSummary     Section = "Summary"
)

var sectionSlugs = map[Section]string{
	SectionFunnelTypes: "funnel-types",
	SectionFeatures:    "checklist-features",
	SectionGoals:       "funnel-goals",
	SectionNotes:       "notes-tips",
	SectionFAQ:         "faq-resources",
	SectionSummary:     "summary",
}

var sectionHeaders = map[Section]string{
	SectionFunnelTypes: "Main Funnel Types",
	SectionFeatures:    "Essential Funnel Checklist Features",
	SectionGoals:       "Set Specific Goals for Each Funnel",
	SectionNotes:       "Additional Notes & Tips",
	SectionFAQ:         "Frequently Asked Questions & Resources",
	SectionSummary:     "Summary of Selected Items and Goals",
}

var sectionBlurbs = map[Section]string{
	SectionFunnelTypes: "Below are common funnel types. Check each one relevant to your business needs, and view detailed descriptions and best practices for each.",
	SectionFeatures:    "Each funnel can be optimized with the following features. Use these checkboxes to track your progress, and read the descriptions for each item.",
	SectionGoals:       "For each selected funnel, set specific, measurable goals. This will help you track your progress and identify areas for improvement.",
	SectionNotes:       "Use this section to jot down any additional notes, reminders, or strategies for each funnel or feature.",
}

// DefaultSections returns the navigation in display order.
func DefaultSections() []Section {
	return []Section{
		SectionFunnelTypes,
		SectionFeatures,
		SectionGoals,
		SectionNotes,
		SectionFAQ,
		SectionSummary,
	}
}

// Slug returns the URL-friendly identifier of the section.
func (s Section) Slug() string {
	return sectionSlugs[s]
}

// Header returns the heading rendered at the top of the section.
func (s Section) Header() string {
	return sectionHeaders[s]
}

// Blurb returns the explanatory paragraph under the heading, if any.
func (s Section) Blurb() string {
	return sectionBlurbs[s]
}

// ParseSection accepts the exact section name or its slug. An empty value
// resolves to the first section.
func ParseSection(value string) (Section, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SectionFunnelTypes, nil
	}
	for _, section := range DefaultSections() {
		if value == string(section) || strings.EqualFold(value, section.Slug()) {
			return section, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, value)
}
