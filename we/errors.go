package we

import (
	"errors"
	"fmt"
)

var RevisionConflict = errors.New("revision-conflict")

type UnexpectedCommandError struct {
	Command CommandName
}

func (e UnexpectedCommandError) Error() string {
	return fmt.Sprintf("unexpected command %s", e.Command)
}

func UnexpectedCommand(command Command) error {
	return UnexpectedCommandError{Command: CommandNameOf(command)}
}

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}

func CommandNotFound(command CommandName) CommandNotFoundError {
	return CommandNotFoundError{Command: command}
}

// InvalidPayloadError reports a remote command whose payload could not be decoded.
type InvalidPayloadError struct {
	Command CommandName
	Err     error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload for %s: %v", e.Command, e.Err)
}

func (e *InvalidPayloadError) Unwrap() error {
	return e.Err
}
