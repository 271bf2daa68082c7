package pacer

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// InitialState seeds a fresh streaming session. The starting delay is 0.8 of
// the nominal tick (0.8 / rate seconds), leaving headroom for per-tick
// overhead that the feedback loop then absorbs.
func (p *Pacer) InitialState() types.SessionState {
	now := p.now()
	return types.SessionState{
		Delay:         time.Duration(0.8 / float64(p.samplingRate) * float64(time.Second)),
		TickCount:     1,
		LastHeartbeat: now,
		StartTime:     now,
	}
}

// Adjust advances the session by one tick and, when a full target interval of
// samples has elapsed, re-centers the delay from the measured drift. The
// returned state is authoritative; callers must replace their copy with it.
func (p *Pacer) Adjust(state types.SessionState) types.SessionState {
	state.TickCount++

	if state.TickCount != int(p.targetInterval.Seconds()*float64(p.samplingRate)) {
		return state
	}

	now := p.now()
	duration := now.Sub(state.LastHeartbeat)
	deviationMs := (p.targetInterval - duration).Seconds() * 1000

	targetMs := p.targetInterval.Seconds() * 1000
	correction := deviationMs / targetMs / float64(p.samplingRate) * p.dampening
	newDelay := state.Delay + time.Duration(correction*float64(time.Second))

	if newDelay < 0 {
		// The uncorrected magnitude is discarded, not retried: the loop is
		// already behind and cannot pause less than not at all.
		newDelay = 0
		p.notifyMonitors(func(m types.Monitor) {
			m.InvokeOnRateUnderflow(p.componentMetadata, deviationMs)
		})
		p.NotifyLoggers(
			types.WarnLevel,
			"Computed delay went negative; clamping to zero",
			"component", p.componentMetadata,
			"event", "RateUnderflow",
			"deviation_ms", deviationMs,
		)
	} else {
		p.notifyMonitors(func(m types.Monitor) {
			m.InvokeOnDriftCorrection(p.componentMetadata, deviationMs, newDelay)
		})
	}

	p.NotifyLoggers(
		types.DebugLevel,
		"Drift correction applied",
		"component", p.componentMetadata,
		"event", "DriftCorrection",
		"deviation_ms", deviationMs,
		"new_delay", newDelay,
	)

	state.Delay = newDelay
	state.TickCount = 0
	state.LastHeartbeat = now
	return state
}
