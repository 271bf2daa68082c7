package types

import (
	"context"
	"time"
)

// SampleSource yields successive sample rows in capture order. Next returns
// false once the source is exhausted; the stream loop then stops.
type SampleSource interface {
	Next() ([]float64, bool)
	Rewind()
	Channels() int
	Len() int
}

// ResultRenderer owns the operator console contract: a table header at stream
// start and one line per classified result.
type ResultRenderer interface {
	Header()
	Render(at time.Time, sessionID string, o Outcome)
}

// Streamer runs the produce/flush/listen/sleep tick loop. Start blocks until
// the duration cap is reached, the sample source is exhausted, or Stop (or
// context cancellation) requests a cooperative shutdown. The state machine is
// Idle -> Streaming -> Stopped; Stopped is terminal.
type Streamer interface {
	Start(ctx context.Context) error
	Stop()

	ConnectLogger(...Logger)
	ConnectMonitor(...Monitor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
