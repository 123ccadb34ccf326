package checklist

import (
	"math"
	"sync"
	"time"
)

// Goal bounds enforced when values are written.
const (
	MinConversionRate  = 0.0
	MaxConversionRate  = 100.0
	ConversionRateStep = 0.1
	LeadsTargetStep    = 10
	RevenueGoalStep    = 100.0
)

// FormState is the flat widget store of one session. Entries are created lazily
// on first write and never removed by deselection.
type FormState struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewFormState creates an empty store.
func NewFormState() *FormState {
	return &FormState{values: make(map[string]any)}
}

// Selected reports whether the entry's checkbox is on.
func (s *FormState) Selected(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, _ := s.values[SelectionKey(name)].(bool)
	return v
}

// SetSelected records the checkbox state of an entry.
func (s *FormState) SetSelected(name string, on bool) {
	s.set(SelectionKey(name), on)
}

// Text returns the stored text for key, or the placeholder when never written.
func (s *FormState) Text(key, placeholder string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return placeholder
}

// SetText stores free text for key.
func (s *FormState) SetText(key, text string) {
	s.set(key, text)
}

// Goals returns the goal set of a funnel.
func (s *FormState) Goals(funnel string) GoalSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var goals GoalSet
	if v, ok := s.values[ConversionRateKey(funnel)].(float64); ok {
		goals.ConversionRate = &v
	}
	if v, ok := s.values[LeadsTargetKey(funnel)].(int); ok {
		goals.LeadsTarget = &v
	}
	if v, ok := s.values[RevenueGoalKey(funnel)].(float64); ok {
		goals.RevenueGoal = &v
	}
	return goals
}

// SetConversionRate stores the rate clamped to [0, 100].
func (s *FormState) SetConversionRate(funnel string, rate float64) float64 {
	rate = clampFloat(rate, MinConversionRate, MaxConversionRate)
	s.set(ConversionRateKey(funnel), rate)
	return rate
}

// SetLeadsTarget stores the target clamped to >= 0.
func (s *FormState) SetLeadsTarget(funnel string, leads int) int {
	if leads < 0 {
		leads = 0
	}
	s.set(LeadsTargetKey(funnel), leads)
	return leads
}

// SetRevenueGoal stores the goal clamped to >= 0.
func (s *FormState) SetRevenueGoal(funnel string, revenue float64) float64 {
	revenue = clampFloat(revenue, 0, math.Inf(1))
	s.set(RevenueGoalKey(funnel), revenue)
	return revenue
}

// ApplyGoals writes every non-nil field of input.
func (s *FormState) ApplyGoals(funnel string, input GoalInput) GoalSet {
	if input.ConversionRate != nil {
		s.SetConversionRate(funnel, *input.ConversionRate)
	}
	if input.LeadsTarget != nil {
		s.SetLeadsTarget(funnel, *input.LeadsTarget)
	}
	if input.RevenueGoal != nil {
		s.SetRevenueGoal(funnel, *input.RevenueGoal)
	}
	return s.Goals(funnel)
}

// Has reports whether key has ever been written.
func (s *FormState) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Len returns the number of stored widget values.
func (s *FormState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Snapshot copies the raw key/value pairs.
func (s *FormState) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *FormState) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Session is one visitor's form state.
type Session struct {
	ID        string
	State     *FormState
	CreatedAt time.Time
	TouchedAt time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		State:     NewFormState(),
		CreatedAt: now,
		TouchedAt: now,
	}
}
