// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package voice

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CommandRecognizer runs an external speech-to-text program that listens
// for one utterance and prints the transcript on stdout.
type CommandRecognizer struct {
	argv []string
	exec executor
}

// NewCommandRecognizer returns a recognizer for argv. An empty argv is
// never available.
func NewCommandRecognizer(argv []string) *CommandRecognizer {
	return &CommandRecognizer{argv: argv, exec: &osExecutor{}}
}

// Available reports whether the program is configured and on PATH.
func (c *CommandRecognizer) Available() bool {
	if len(c.argv) == 0 || c.argv[0] == "" {
		return false
	}
	_, err := c.exec.LookPath(c.argv[0])
	return err == nil
}

// Listen implements Recognizer. There is no timeout beyond ctx.
func (c *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	if len(c.argv) == 0 {
		return "", ErrUnavailable
	}
	out, err := c.exec.Output(ctx, c.argv[0], c.argv[1:]...)
	if err != nil {
		return "", fmt.Errorf("running %s: %w", c.argv[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}
