package pacer

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// WithTargetInterval sets the drift-correction cadence.
func WithTargetInterval(d time.Duration) types.Option[types.RateController] {
	return func(rc types.RateController) {
		if p, ok := rc.(*Pacer); ok {
			p.SetTargetInterval(d)
		}
	}
}

// WithSamplingRate sets the target publish rate in Hz.
func WithSamplingRate(hz int) types.Option[types.RateController] {
	return func(rc types.RateController) {
		if p, ok := rc.(*Pacer); ok {
			p.SetSamplingRate(hz)
		}
	}
}

// WithDampening sets the feedback filter coefficient.
func WithDampening(d float64) types.Option[types.RateController] {
	return func(rc types.RateController) {
		if p, ok := rc.(*Pacer); ok {
			p.SetDampening(d)
		}
	}
}

// WithNowFunc overrides the clock used for drift measurement.
func WithNowFunc(now func() time.Time) types.Option[types.RateController] {
	return func(rc types.RateController) {
		if p, ok := rc.(*Pacer); ok {
			p.SetNowFunc(now)
		}
	}
}

// WithLogger attaches loggers to the pacer.
func WithLogger(l ...types.Logger) types.Option[types.RateController] {
	return func(rc types.RateController) {
		rc.ConnectLogger(l...)
	}
}

// WithMonitor attaches monitors to the pacer.
func WithMonitor(m ...types.Monitor) types.Option[types.RateController] {
	return func(rc types.RateController) {
		rc.ConnectMonitor(m...)
	}
}
