package builder

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/streamer"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// Streamer runs the produce/flush/listen/sleep loop.
type Streamer = types.Streamer

// NewEEGStreamer creates a stream loop. Connect a bus client, sample source,
// pacer, and renderer before calling Start.
func NewEEGStreamer(options ...types.Option[types.Streamer]) types.Streamer {
	return streamer.NewEEGStreamer(options...)
}

// StreamerWithBus connects the bus client.
func StreamerWithBus(bus types.BusClient) types.Option[types.Streamer] {
	return streamer.WithBus(bus)
}

// StreamerWithSource connects the sample source.
func StreamerWithSource(source types.SampleSource) types.Option[types.Streamer] {
	return streamer.WithSource(source)
}

// StreamerWithPacer connects the rate controller.
func StreamerWithPacer(p types.RateController) types.Option[types.Streamer] {
	return streamer.WithPacer(p)
}

// StreamerWithRenderer connects the operator console.
func StreamerWithRenderer(r types.ResultRenderer) types.Option[types.Streamer] {
	return streamer.WithRenderer(r)
}

// StreamerWithSessionID sets the patient identifier shown on the console.
func StreamerWithSessionID(id string) types.Option[types.Streamer] {
	return streamer.WithSessionID(id)
}

// StreamerWithMontage sets the electrode montage stamped as the record key.
func StreamerWithMontage(montage string) types.Option[types.Streamer] {
	return streamer.WithMontage(montage)
}

// StreamerWithSampleTopic names the outbound topic in lifecycle telemetry.
func StreamerWithSampleTopic(topic string) types.Option[types.Streamer] {
	return streamer.WithSampleTopic(topic)
}

// StreamerWithMaxStreamDuration caps the session length.
func StreamerWithMaxStreamDuration(d time.Duration) types.Option[types.Streamer] {
	return streamer.WithMaxStreamDuration(d)
}

// StreamerWithSamplingRate sets the publish rate in Hz.
func StreamerWithSamplingRate(hz int) types.Option[types.Streamer] {
	return streamer.WithSamplingRate(hz)
}

// StreamerWithFlushInterval sets the batch flush cadence.
func StreamerWithFlushInterval(d time.Duration) types.Option[types.Streamer] {
	return streamer.WithFlushInterval(d)
}

// StreamerWithListenInterval sets the result poll cadence.
func StreamerWithListenInterval(d time.Duration) types.Option[types.Streamer] {
	return streamer.WithListenInterval(d)
}

// StreamerWithLogger adds a logger to the streamer.
func StreamerWithLogger(logger ...types.Logger) types.Option[types.Streamer] {
	return streamer.WithLogger(logger...)
}

// StreamerWithMonitor adds a monitor to the streamer.
func StreamerWithMonitor(m ...types.Monitor) types.Option[types.Streamer] {
	return streamer.WithMonitor(m...)
}
