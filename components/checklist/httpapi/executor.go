package httpapi

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-funnel-checklist/components/checklist/commands"
)

// Executor runs the checklist mutations behind the HTTP transports.
type Executor interface {
	Toggle(ctx context.Context, input commands.ToggleEntryInput) error
	SaveNote(ctx context.Context, input commands.SaveNoteInput) error
	SetGoals(ctx context.Context, input commands.SetGoalsInput) error
	EndSession(ctx context.Context, input commands.EndSessionInput) error
}

// CommandExecutor adapts go-command commanders to the Executor interface.
type CommandExecutor struct {
	ToggleCommand     gocommand.Commander[commands.ToggleEntryInput]
	SaveNoteCommand   gocommand.Commander[commands.SaveNoteInput]
	SetGoalsCommand   gocommand.Commander[commands.SetGoalsInput]
	EndSessionCommand gocommand.Commander[commands.EndSessionInput]
}

var errCommandMissing = errors.New("httpapi: command not configured")

func (e CommandExecutor) Toggle(ctx context.Context, input commands.ToggleEntryInput) error {
	if e.ToggleCommand == nil {
		return errCommandMissing
	}
	return e.ToggleCommand.Execute(ctx, input)
}

func (e CommandExecutor) SaveNote(ctx context.Context, input commands.SaveNoteInput) error {
	if e.SaveNoteCommand == nil {
		return errCommandMissing
	}
	return e.SaveNoteCommand.Execute(ctx, input)
}

func (e CommandExecutor) SetGoals(ctx context.Context, input commands.SetGoalsInput) error {
	if e.SetGoalsCommand == nil {
		return errCommandMissing
	}
	return e.SetGoalsCommand.Execute(ctx, input)
}

func (e CommandExecutor) EndSession(ctx context.Context, input commands.EndSessionInput) error {
	if e.EndSessionCommand == nil {
		return errCommandMissing
	}
	return e.EndSessionCommand.Execute(ctx, input)
}
