package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// EndSessionInput identifies the session to drop.
type EndSessionInput struct {
	SessionID string `json:"session"`
}

type sessionService interface {
	EndSession(ctx context.Context, sessionID string) error
}

// EndSessionCommand wraps Service.EndSession.
type EndSessionCommand struct {
	service   sessionService
	telemetry Telemetry
}

// NewEndSessionCommand builds a command instance.
func NewEndSessionCommand(service sessionService, telemetry Telemetry) *EndSessionCommand {
	return &EndSessionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[EndSessionInput] = (*EndSessionCommand)(nil)

// Execute drops the session.
func (c *EndSessionCommand) Execute(ctx context.Context, msg EndSessionInput) error {
	if c.service == nil {
		return errors.New("end session command requires service")
	}
	if err := c.service.EndSession(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "checklist.command.end_session", nil)
	return nil
}
