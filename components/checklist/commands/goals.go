package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

// SetGoalsInput updates the goals of one funnel. Nil fields are left as they are.
type SetGoalsInput struct {
	SessionID string              `json:"session"`
	Funnel    string              `json:"funnel"`
	Goals     checklist.GoalInput `json:"goals"`
	// Result receives the stored goals after clamping when non-nil.
	Result *checklist.GoalSet `json:"-"`
}

type goalsService interface {
	SetGoals(ctx context.Context, sessionID, funnel string, input checklist.GoalInput) (checklist.GoalSet, error)
}

// SetGoalsCommand wraps Service.SetGoals.
type SetGoalsCommand struct {
	service   goalsService
	telemetry Telemetry
}

// NewSetGoalsCommand builds a command instance.
func NewSetGoalsCommand(service goalsService, telemetry Telemetry) *SetGoalsCommand {
	return &SetGoalsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetGoalsInput] = (*SetGoalsCommand)(nil)

// Execute stores the goals.
func (c *SetGoalsCommand) Execute(ctx context.Context, msg SetGoalsInput) error {
	if c.service == nil {
		return errors.New("set goals command requires service")
	}
	goals, err := c.service.SetGoals(ctx, msg.SessionID, msg.Funnel, msg.Goals)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = goals
	}
	c.telemetry.Record(ctx, "checklist.command.goals", map[string]any{"funnel": msg.Funnel})
	return nil
}
