package checklist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Form field names shared by the transports.
const (
	FieldSession        = "session"
	FieldSection        = "section"
	FieldKind           = "kind"
	FieldName           = "name"
	FieldOn             = "on"
	FieldNote           = "field"
	FieldText           = "text"
	FieldFunnel         = "funnel"
	FieldConversionRate = "conversion_rate"
	FieldLeadsTarget    = "leads_target"
	FieldRevenueGoal    = "revenue_goal"
)

// ParseGoalForm reads the three goal fields through get. Blank fields are left
// unset; anything that is not a finite number wraps ErrInvalidGoal.
func ParseGoalForm(get func(string) string) (GoalInput, error) {
	var input GoalInput
	rate, err := parseFloatField(get, FieldConversionRate)
	if err != nil {
		return GoalInput{}, err
	}
	input.ConversionRate = rate
	leads, err := parseFloatField(get, FieldLeadsTarget)
	if err != nil {
		return GoalInput{}, err
	}
	if leads != nil {
		n, err := leadsTarget(*leads)
		if err != nil {
			return GoalInput{}, err
		}
		input.LeadsTarget = &n
	}
	revenue, err := parseFloatField(get, FieldRevenueGoal)
	if err != nil {
		return GoalInput{}, err
	}
	input.RevenueGoal = revenue
	return input, nil
}

// leadsTarget converts a whole number to an int. Negative values are clamped
// by the form state later; values past the int range are rejected.
func leadsTarget(v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidGoal, FieldLeadsTarget)
	}
	if v >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %s exceeds %d", ErrInvalidGoal, FieldLeadsTarget, math.MaxInt)
	}
	if v < 0 {
		return 0, nil
	}
	return int(v), nil
}

func parseFloatField(get func(string) string, name string) (*float64, error) {
	raw := strings.TrimSpace(get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidGoal, name, raw)
	}
	return &v, nil
}

// ParseToggle reads a checkbox value. Empty means off.
func ParseToggle(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	default:
		return false, fmt.Errorf("checklist: invalid toggle value %q", raw)
	}
}

// ParseEntryKind accepts "funnel" or "feature".
func ParseEntryKind(raw string) (EntryKind, error) {
	switch EntryKind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindFunnel:
		return KindFunnel, nil
	case KindFeature:
		return KindFeature, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrUnknownEntry, raw)
	}
}
