// Package renderer prints classification results to the operator console.
package renderer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// Console writes a fixed-width result table. The seizure warning is styled
// red when the writer supports color; on a plain writer the text degrades to
// unstyled output.
type Console struct {
	w   io.Writer
	out *termenv.Output
}

// NewConsole builds a console renderer on w. A nil writer defaults to stdout.
// Output options (color profile overrides and the like) pass through to
// termenv.
func NewConsole(w io.Writer, opts ...termenv.OutputOption) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		w:   w,
		out: termenv.NewOutput(w, opts...),
	}
}

// Header prints the table header once at stream start.
func (c *Console) Header() {
	fmt.Fprintln(c.w, "Time \t \t Patient \t Event ")
}

// Render prints one classified result line.
func (c *Console) Render(at time.Time, sessionID string, o types.Outcome) {
	t := at.Format("03:04:05 PM")
	switch o.Kind {
	case types.OutcomeSeizure:
		warning := c.out.String("!!seizure in 10~15 min!!").Foreground(termenv.ANSIRed).String()
		fmt.Fprintln(c.w, t, "\t", sessionID, "\t", warning)
	case types.OutcomeBackground:
		fmt.Fprintln(c.w, t, "\t", sessionID, "\t", "looks all good")
	default:
		fmt.Fprintln(c.w, t, fmt.Sprintf("UNKNOWN: %s not recognized", o.Label))
	}
}

var _ types.ResultRenderer = (*Console)(nil)
