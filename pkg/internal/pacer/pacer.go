// Package pacer implements the adaptive rate controller for the stream loop.
//
// An open-loop fixed sleep drifts under scheduler jitter and flush/listen
// overhead. The pacer is a simple integral-feedback controller: once per
// target interval of samples it measures the elapsed time since the last
// heartbeat and nudges the per-tick delay by the dampened deviation.
package pacer

import (
	"sync"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
	"github.com/neuroline/eegstream/pkg/internal/utils"
)

const (
	defaultTargetInterval = 1 * time.Second
	defaultSamplingRate   = 256
	defaultDampening      = 0.5
)

// Pacer is the concrete rate controller. It holds configuration only; all
// per-session mutable state travels through types.SessionState by value.
type Pacer struct {
	componentMetadata types.ComponentMetadata

	loggers     []types.Logger
	loggersLock sync.Mutex
	monitors    []types.Monitor
	monitorLock sync.Mutex

	targetInterval time.Duration
	samplingRate   int
	dampening      float64
	now            func() time.Time
}

// NewPacer constructs a rate controller. Defaults: 1s target interval,
// 256 Hz sampling rate, 0.5 dampening.
func NewPacer(options ...types.Option[types.RateController]) types.RateController {
	p := &Pacer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PACER",
		},
		targetInterval: defaultTargetInterval,
		samplingRate:   defaultSamplingRate,
		dampening:      defaultDampening,
		now:            time.Now,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	return p
}

// SetTargetInterval sets the correction cadence.
func (p *Pacer) SetTargetInterval(d time.Duration) {
	if d > 0 {
		p.targetInterval = d
	}
}

// SetSamplingRate sets the target publish rate in Hz.
func (p *Pacer) SetSamplingRate(hz int) {
	if hz > 0 {
		p.samplingRate = hz
	}
}

// SetDampening sets the low-pass filter coefficient applied to corrections.
func (p *Pacer) SetDampening(d float64) {
	if d > 0 {
		p.dampening = d
	}
}

// SetNowFunc overrides the clock, used by tests to simulate tick durations.
func (p *Pacer) SetNowFunc(now func() time.Time) {
	if now != nil {
		p.now = now
	}
}

func (p *Pacer) GetComponentMetadata() types.ComponentMetadata { return p.componentMetadata }

func (p *Pacer) SetComponentMetadata(name, id string) {
	p.componentMetadata.Name = name
	p.componentMetadata.ID = id
}
