package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

// SaveNoteInput writes the text of one note widget.
type SaveNoteInput struct {
	SessionID string              `json:"session"`
	Field     checklist.NoteField `json:"field"`
	Name      string              `json:"name"`
	Text      string              `json:"text"`
}

type noteService interface {
	SaveNote(ctx context.Context, sessionID string, field checklist.NoteField, name, text string) error
}

// SaveNoteCommand wraps Service.SaveNote.
type SaveNoteCommand struct {
	service   noteService
	telemetry Telemetry
}

// NewSaveNoteCommand builds a command instance.
func NewSaveNoteCommand(service noteService, telemetry Telemetry) *SaveNoteCommand {
	return &SaveNoteCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveNoteInput] = (*SaveNoteCommand)(nil)

// Execute stores the note.
func (c *SaveNoteCommand) Execute(ctx context.Context, msg SaveNoteInput) error {
	if c.service == nil {
		return errors.New("save note command requires service")
	}
	if err := c.service.SaveNote(ctx, msg.SessionID, msg.Field, msg.Name, msg.Text); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "checklist.command.note", map[string]any{
		"field": string(msg.Field),
		"name":  msg.Name,
	})
	return nil
}
