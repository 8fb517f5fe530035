// Package pip implements the downloader port by shelling out to pip.
package pip

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/populate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Downloader implements ports.Downloader by invoking
// `<pip> download --no-deps --dest <dest> <spec>` as a blocking subprocess.
// The specifier is handed over verbatim as a single positional argument.
type Downloader struct {
	command string
}

// NewDownloader creates a Downloader that runs the given pip executable.
func NewDownloader(command string) *Downloader {
	if command == "" {
		command = domain.DefaultPipCommand
	}
	return &Downloader{command: command}
}

// Fetch downloads exactly spec into dest, without following its dependency
// graph. Stdout and stderr are captured, not streamed: on success they are
// discarded, on failure the tail of the combined output is attached to the
// returned error for diagnostics.
func (d *Downloader) Fetch(ctx context.Context, spec domain.Spec, dest string) error {
	args := []string{"download", "--no-deps", "--dest", dest, spec.String()}

	cmd := exec.CommandContext(ctx, d.command, args...) // #nosec G204 -- command comes from the user's own configuration

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(errors.Join(domain.ErrDownloadFailed, err), "exit_code", exitCode)
		if out := tail(combined.String()); out != "" {
			wrapped = zerr.With(wrapped, "output", out)
		}
		return wrapped
	}

	return nil
}

// tailLines bounds how much tool output gets attached to a failure. pip
// resolution errors put the actionable message in the last few lines.
const tailLines = 10

func tail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}
	return strings.Join(lines, "\n")
}
