// Package console implements the stdout progress reporter for a run.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/populate/internal/core/domain"
	"go.trai.ch/populate/internal/ui/output"
	"go.trai.ch/populate/internal/ui/style"
)

// Reporter implements ports.Reporter, printing one human-readable line per
// event to stdout. The line texts are stable: scripts watching the output can
// rely on them, and the NO_COLOR Ascii profile reduces every line to its bare
// text.
type Reporter struct {
	w      io.Writer
	output *termenv.Output
}

// NewReporter creates a Reporter writing to w. A nil writer defaults to
// os.Stdout.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:      w,
		output: output.New(w),
	}
}

// Start announces that downloads are about to begin.
func (r *Reporter) Start() {
	_, _ = fmt.Fprintln(r.w, "Downloading packages...")
}

// Success reports one successfully downloaded specifier.
func (r *Reporter) Success(spec domain.Spec) {
	symbol := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.w, "%s Successfully downloaded %s\n", symbol, spec)
}

// Failure reports one failed specifier with the underlying error detail.
func (r *Reporter) Failure(spec domain.Spec, err error) {
	symbol := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
	_, _ = fmt.Fprintf(r.w, "%s Failed to download %s: %v\n", symbol, spec, err)
}

// MissingRequirements reports that the requirements file was not found at the
// expected path.
func (r *Reporter) MissingRequirements(path string) {
	_, _ = fmt.Fprintf(r.w, "Error: requirements file not found at %s\n", path)
}

// NoPackages reports that the requirements file yielded no specifiers.
func (r *Reporter) NoPackages() {
	_, _ = fmt.Fprintln(r.w, "No packages found in requirements file")
}

// Complete prints the final completion line.
func (r *Reporter) Complete() {
	_, _ = fmt.Fprintln(r.w, "Package population complete!")
}
