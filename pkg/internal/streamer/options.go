package streamer

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// WithBus connects the bus client used for publishing and polling.
func WithBus(bus types.BusClient) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetBus(bus)
		}
	}
}

// WithSource connects the sample source to replay.
func WithSource(source types.SampleSource) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetSource(source)
		}
	}
}

// WithPacer connects the rate controller.
func WithPacer(p types.RateController) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetPacer(p)
		}
	}
}

// WithRenderer connects the operator console.
func WithRenderer(r types.ResultRenderer) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetRenderer(r)
		}
	}
}

// WithSessionID sets the patient identifier shown on the console.
func WithSessionID(id string) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetSessionID(id)
		}
	}
}

// WithMontage sets the electrode montage stamped as the outbound record key.
func WithMontage(montage string) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetMontage(montage)
		}
	}
}

// WithSampleTopic names the outbound topic in lifecycle telemetry.
func WithSampleTopic(topic string) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetSampleTopic(topic)
		}
	}
}

// WithMaxStreamDuration caps the session length.
func WithMaxStreamDuration(d time.Duration) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetMaxStreamDuration(d)
		}
	}
}

// WithSamplingRate sets the publish rate in Hz.
func WithSamplingRate(hz int) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetSamplingRate(hz)
		}
	}
}

// WithFlushInterval sets the wall-clock cadence of batch flushes.
func WithFlushInterval(d time.Duration) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetFlushInterval(d)
		}
	}
}

// WithListenInterval sets the wall-clock cadence of result polls.
func WithListenInterval(d time.Duration) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetListenInterval(d)
		}
	}
}

// WithNowFunc overrides the clock, used by tests.
func WithNowFunc(now func() time.Time) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetNowFunc(now)
		}
	}
}

// WithSleepFunc overrides the per-tick pause, used by tests.
func WithSleepFunc(sleep func(time.Duration)) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		if s, ok := st.(*EEGStreamer); ok {
			s.SetSleepFunc(sleep)
		}
	}
}

// WithLogger attaches loggers to the streamer.
func WithLogger(l ...types.Logger) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		st.ConnectLogger(l...)
	}
}

// WithMonitor attaches monitors to the streamer.
func WithMonitor(m ...types.Monitor) types.Option[types.Streamer] {
	return func(st types.Streamer) {
		st.ConnectMonitor(m...)
	}
}
