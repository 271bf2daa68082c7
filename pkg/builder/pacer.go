package builder

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/pacer"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// RateController is the pacing interface used by the stream loop.
type RateController = types.RateController

// NewPacer creates an adaptive rate controller.
func NewPacer(options ...types.Option[types.RateController]) types.RateController {
	return pacer.NewPacer(options...)
}

// PacerWithTargetInterval sets the drift-correction cadence.
func PacerWithTargetInterval(d time.Duration) types.Option[types.RateController] {
	return pacer.WithTargetInterval(d)
}

// PacerWithSamplingRate sets the target publish rate in Hz.
func PacerWithSamplingRate(hz int) types.Option[types.RateController] {
	return pacer.WithSamplingRate(hz)
}

// PacerWithDampening sets the feedback filter coefficient.
func PacerWithDampening(d float64) types.Option[types.RateController] {
	return pacer.WithDampening(d)
}

// PacerWithLogger adds a logger to the pacer.
func PacerWithLogger(logger ...types.Logger) types.Option[types.RateController] {
	return pacer.WithLogger(logger...)
}

// PacerWithMonitor adds a monitor to the pacer.
func PacerWithMonitor(m ...types.Monitor) types.Option[types.RateController] {
	return pacer.WithMonitor(m...)
}
