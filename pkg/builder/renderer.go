package builder

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/neuroline/eegstream/pkg/internal/renderer"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// ResultRenderer owns the operator console contract.
type ResultRenderer = types.ResultRenderer

// NewConsole creates a console renderer on w. A nil writer defaults to stdout.
func NewConsole(w io.Writer, opts ...termenv.OutputOption) ResultRenderer {
	return renderer.NewConsole(w, opts...)
}
