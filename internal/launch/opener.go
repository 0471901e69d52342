// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package launch

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// Opener opens a URL in the user's browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Start(ctx context.Context, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Start runs the command without waiting for the browser to exit. The
// child is reaped in the background.
func (o *osExecutor) Start(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// OSOpener hands URLs to the platform's default handler: open on macOS,
// rundll32 on Windows and xdg-open elsewhere.
type OSOpener struct {
	goos string
	exec executor
}

// NewOSOpener returns an Opener for the running platform.
func NewOSOpener() *OSOpener {
	return &OSOpener{goos: runtime.GOOS, exec: &osExecutor{}}
}

func (o *OSOpener) command(url string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Open implements Opener.
func (o *OSOpener) Open(ctx context.Context, url string) error {
	bin, args := o.command(url)
	if _, err := o.exec.LookPath(bin); err != nil {
		return fmt.Errorf("no URL handler: %s not found on PATH: %w", bin, err)
	}
	if err := o.exec.Start(ctx, bin, args...); err != nil {
		return fmt.Errorf("running %s: %w", bin, err)
	}
	return nil
}

// Printer writes the URL instead of opening it, for headless hosts and
// piping into other tools.
type Printer struct {
	Out io.Writer
}

// Open implements Opener.
func (p Printer) Open(_ context.Context, url string) error {
	_, err := fmt.Fprintln(p.Out, url)
	return err
}
