package types

import "time"

// SessionState is the mutable pacing record owned by the stream loop. It is
// threaded through the loop by value: the rate controller returns an updated
// copy each tick, and callers must treat the returned state as authoritative.
//
// Invariant: Delay >= 0 at all times. A correction that would drive Delay
// negative is clamped to zero by the rate controller, never propagated.
type SessionState struct {
	Delay         time.Duration // per-tick pause before the next sample is published
	TickCount     int           // ticks since the last drift correction
	LastHeartbeat time.Time     // timestamp of the last drift-correction measurement
	StartTime     time.Time     // when the streaming session began
}

// RateController recomputes the per-tick pause so the average publish rate
// stays close to the target sampling rate despite scheduler jitter and
// flush/listen overhead.
type RateController interface {
	// InitialState seeds a fresh session (delay = 0.8 / sampling rate).
	InitialState() SessionState

	// Adjust is invoked once per tick after the loop has paused for
	// state.Delay. It increments the tick count and, once a full target
	// interval of samples has elapsed, re-centers the delay from the
	// measured drift.
	Adjust(state SessionState) SessionState

	ConnectLogger(...Logger)
	ConnectMonitor(...Monitor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name, id string)
}
