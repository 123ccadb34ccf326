package checklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const goalPayloadSchemaName = "https://github.com/goliatone/go-funnel-checklist/schemas/goal_payload.json"

// goalPayloadSchema types the JSON body of a goals update. Range clamping is
// left to the form state, so only types and the funnel name are enforced.
const goalPayloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["funnel"],
  "additionalProperties": false,
  "properties": {
    "session": {"type": "string"},
    "section": {"type": "string"},
    "funnel": {"type": "string", "minLength": 1},
    "conversion_rate": {"type": ["number", "null"]},
    "leads_target": {"type": ["integer", "null"]},
    "revenue_goal": {"type": ["number", "null"]}
  }
}`

// GoalPayloadValidator checks decoded JSON goal payloads.
type GoalPayloadValidator interface {
	Validate(payload map[string]any) error
}

// JSONSchemaGoalValidator validates goal payloads against an embedded schema.
type JSONSchemaGoalValidator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewJSONSchemaGoalValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaGoalValidator() *JSONSchemaGoalValidator {
	return &JSONSchemaGoalValidator{}
}

// Validate returns an error wrapping ErrInvalidGoal when the payload does not
// satisfy the schema.
func (v *JSONSchemaGoalValidator) Validate(payload map[string]any) error {
	schema, err := v.compiled()
	if err != nil {
		return err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	normalized, err := normalizePayload(payload)
	if err != nil {
		return fmt.Errorf("checklist: normalize goal payload: %w", err)
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGoal, validationMessage(err))
	}
	return nil
}

// validationMessage reports the failing instance locations without the
// schema locations.
func validationMessage(err error) string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	var parts []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "/"
			}
			parts = append(parts, location+": "+e.Message)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return strings.Join(parts, "; ")
}

func (v *JSONSchemaGoalValidator) compiled() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(goalPayloadSchemaName, strings.NewReader(goalPayloadSchema)); err != nil {
			v.err = fmt.Errorf("checklist: load goal schema: %w", err)
			return
		}
		v.schema, v.err = compiler.Compile(goalPayloadSchemaName)
		if v.err != nil {
			v.err = fmt.Errorf("checklist: compile goal schema: %w", v.err)
		}
	})
	return v.schema, v.err
}

// jsonschema expects values as produced by encoding/json with UseNumber.
func normalizePayload(payload map[string]any) (any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()
	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// GoalInputFromPayload converts a validated payload into a GoalInput.
func GoalInputFromPayload(payload map[string]any) (string, GoalInput, error) {
	funnel, _ := payload["funnel"].(string)
	var input GoalInput
	if v, ok, err := numberField(payload, "conversion_rate"); err != nil {
		return "", GoalInput{}, err
	} else if ok {
		input.ConversionRate = &v
	}
	if v, ok, err := numberField(payload, "leads_target"); err != nil {
		return "", GoalInput{}, err
	} else if ok {
		leads, err := leadsTarget(v)
		if err != nil {
			return "", GoalInput{}, err
		}
		input.LeadsTarget = &leads
	}
	if v, ok, err := numberField(payload, "revenue_goal"); err != nil {
		return "", GoalInput{}, err
	} else if ok {
		input.RevenueGoal = &v
	}
	return strings.TrimSpace(funnel), input, nil
}

func numberField(payload map[string]any, key string) (float64, bool, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case float64:
		return n, true, nil
	case int:
		return float64(n), true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s: %v", ErrInvalidGoal, key, err)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number", ErrInvalidGoal, key)
	}
}
