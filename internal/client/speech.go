package client

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/akuhn/pt/internal/models"
)

var ErrNoSpeechCommand = errors.New("speech command is empty")

// SayCommand pronounces text by running an external program, e.g. macOS "say".
// The text is passed as the last argument.
type SayCommand struct {
	name string
	args []string
}

func NewSayCommand(command []string) (*SayCommand, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, ErrNoSpeechCommand
	}
	return &SayCommand{
		name: command[0],
		args: append([]string(nil), command[1:]...),
	}, nil
}

func (s *SayCommand) Say(ctx context.Context, text string, item models.Item) error {
	args := append(append([]string(nil), s.args...), text)
	out, err := exec.CommandContext(ctx, s.name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("speech for %s failed: %w: %s", item.Reference, err, out)
	}
	return nil
}

// Silent is used when speech is disabled.
type Silent struct{}

func (Silent) Say(context.Context, string, models.Item) error {
	return nil
}
