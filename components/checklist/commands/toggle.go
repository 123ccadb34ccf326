package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

// ToggleEntryInput checks or unchecks a funnel or feature.
type ToggleEntryInput struct {
	SessionID string              `json:"session"`
	Kind      checklist.EntryKind `json:"kind"`
	Name      string              `json:"name"`
	On        bool                `json:"on"`
}

type toggleService interface {
	Toggle(ctx context.Context, sessionID string, kind checklist.EntryKind, name string, on bool) error
}

// ToggleEntryCommand wraps Service.Toggle.
type ToggleEntryCommand struct {
	service   toggleService
	telemetry Telemetry
}

// NewToggleEntryCommand builds a command instance.
func NewToggleEntryCommand(service toggleService, telemetry Telemetry) *ToggleEntryCommand {
	return &ToggleEntryCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ToggleEntryInput] = (*ToggleEntryCommand)(nil)

// Execute applies the toggle.
func (c *ToggleEntryCommand) Execute(ctx context.Context, msg ToggleEntryInput) error {
	if c.service == nil {
		return errors.New("toggle command requires service")
	}
	if err := c.service.Toggle(ctx, msg.SessionID, msg.Kind, msg.Name, msg.On); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "checklist.command.toggle", map[string]any{
		"kind": string(msg.Kind),
		"name": msg.Name,
		"on":   msg.On,
	})
	return nil
}
