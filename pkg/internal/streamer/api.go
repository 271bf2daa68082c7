package streamer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/codec"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// Start runs the tick loop and blocks until the duration cap is reached, the
// sample source is exhausted, the context is cancelled, or Stop is called.
// The result topic is drained and the bus closed before Start returns.
func (s *EEGStreamer) Start(ctx context.Context) error {
	if err := s.checkWiring(); err != nil {
		return err
	}
	if !atomic.CompareAndSwapInt32(&s.state, stateIdle, stateStreaming) {
		return fmt.Errorf("streamer: already started or stopped")
	}

	s.renderer.Header()

	flushEvery := intervalTicks(s.flushInterval, s.samplingRate)
	listenEvery := intervalTicks(s.listenInterval, s.samplingRate)

	startTime := s.now()
	state := s.pacer.InitialState()
	produced := 0

	s.notifyMonitors(func(m types.Monitor) {
		m.InvokeOnStreamStart(s.componentMetadata, s.sessionID, s.sampleTopic)
	})
	s.NotifyLoggers(
		types.InfoLevel,
		"Streaming session started",
		"component", s.componentMetadata,
		"event", "StreamStart",
		"session_id", s.sessionID,
		"topic", s.sampleTopic,
		"rate_hz", s.samplingRate,
	)

	for {
		row, ok := s.source.Next()
		if !ok {
			s.NotifyLoggers(
				types.InfoLevel,
				"Sample source exhausted",
				"component", s.componentMetadata,
				"event", "SourceExhausted",
				"ticks", produced,
			)
			break
		}

		timestamp := float64(s.now().UnixNano()) / float64(time.Second)
		payload, err := codec.Encode(timestamp, row)
		if err != nil {
			s.NotifyLoggers(
				types.ErrorLevel,
				"Sample row rejected by encoder",
				"component", s.componentMetadata,
				"event", "Encode",
				"tick", state.TickCount,
				"error", err,
			)
		} else {
			key := []byte(s.montage)
			if err := s.bus.Publish(ctx, key, payload); err != nil {
				s.NotifyLoggers(
					types.ErrorLevel,
					"Publish failed",
					"component", s.componentMetadata,
					"event", "Publish",
					"tick", state.TickCount,
					"error", err,
				)
			} else {
				produced++
				s.notifyMonitors(func(m types.Monitor) {
					m.InvokeOnSamplePublished(s.componentMetadata, state.TickCount, len(key), len(payload))
				})
			}
		}

		if state.TickCount%flushEvery == 0 {
			s.flush(ctx)
		}
		if state.TickCount%listenEvery == 0 {
			s.listen(ctx)
		}

		s.sleep(state.Delay)
		state = s.pacer.Adjust(state)

		if s.now().Sub(startTime) > s.maxStreamDuration {
			s.NotifyLoggers(
				types.InfoLevel,
				"Duration cap reached",
				"component", s.componentMetadata,
				"event", "DurationCap",
				"cap", s.maxStreamDuration,
			)
			break
		}
		if s.currentState() == stateStopped {
			break
		}
		select {
		case <-ctx.Done():
			s.NotifyLoggers(
				types.InfoLevel,
				"Context cancelled; stopping stream",
				"component", s.componentMetadata,
				"event", "ContextDone",
			)
			atomic.StoreInt32(&s.state, stateStopped)
		default:
		}
		if s.currentState() == stateStopped {
			break
		}
	}

	atomic.StoreInt32(&s.state, stateStopped)
	elapsed := s.now().Sub(startTime)
	s.notifyMonitors(func(m types.Monitor) {
		m.InvokeOnStreamStop(s.componentMetadata, produced, elapsed)
	})
	s.NotifyLoggers(
		types.InfoLevel,
		"Streaming session stopped",
		"component", s.componentMetadata,
		"event", "StreamStop",
		"ticks", produced,
		"elapsed", elapsed,
	)

	s.drainAndClose(ctx)
	return nil
}

// Stop requests a cooperative shutdown. It returns immediately; the loop
// observes the state change on its next tick. Safe to call from any
// goroutine and more than once.
func (s *EEGStreamer) Stop() {
	atomic.StoreInt32(&s.state, stateStopped)
}
