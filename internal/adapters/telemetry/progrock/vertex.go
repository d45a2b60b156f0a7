package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/tvoy/internal/core/domain"
)

// Vertex adapts a *progrock.VertexRecorder to ports.Vertex. One vertex is
// recorded per pipeline step (resolve, provision, convert).
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the writer capturing the step's standard output. The shell
// executor tees converter output here.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the writer capturing the step's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a leveled message on the step. Warnings and errors go to the
// vertex's error stream so they stand out in the recording.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete finishes the step, recording err when the step failed.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the step as skipped because cached state was reused, e.g. a
// provisioning run that hit the install stamp.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
