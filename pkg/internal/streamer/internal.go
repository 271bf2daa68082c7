package streamer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/classifier"
	"github.com/neuroline/eegstream/pkg/internal/codec"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

func (s *EEGStreamer) checkWiring() error {
	switch {
	case s.bus == nil:
		return fmt.Errorf("streamer: no bus client connected")
	case s.source == nil:
		return fmt.Errorf("streamer: no sample source connected")
	case s.pacer == nil:
		return fmt.Errorf("streamer: no rate controller connected")
	case s.renderer == nil:
		return fmt.Errorf("streamer: no renderer connected")
	}
	return nil
}

// intervalTicks converts a wall-clock interval into a tick count, with a
// floor of one tick.
func intervalTicks(interval time.Duration, rate int) int {
	ticks := int(interval.Seconds() * float64(rate))
	if ticks < 1 {
		return 1
	}
	return ticks
}

// flush drains the pending batch under a bounded deadline. Failures are
// logged and swallowed; the loop keeps streaming.
func (s *EEGStreamer) flush(ctx context.Context) {
	flushCtx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()

	if err := s.bus.Flush(flushCtx); err != nil {
		s.NotifyLoggers(
			types.WarnLevel,
			"Flush failed; continuing",
			"component", s.componentMetadata,
			"event", "Flush",
			"error", err,
		)
	}
}

// listen polls the result topic once and renders any classification. Records
// without the expected sentinel key, and records that fail to decode or
// classify, are skipped.
func (s *EEGStreamer) listen(ctx context.Context) {
	msg, err := s.bus.Poll(ctx, pollTimeout)
	if err != nil {
		if errors.Is(err, types.ErrPartitionExhausted) {
			s.NotifyLoggers(
				types.DebugLevel,
				"End of partition reached",
				"component", s.componentMetadata,
				"event", "Listen",
			)
			return
		}
		s.NotifyLoggers(
			types.DebugLevel,
			"Poll error; continuing",
			"component", s.componentMetadata,
			"event", "Listen",
			"error", err,
		)
		return
	}
	if msg == nil {
		return
	}

	s.NotifyLoggers(
		types.DebugLevel,
		"Received message",
		"component", s.componentMetadata,
		"event", "Listen",
		"key", string(msg.Key),
		"val_bytes", len(msg.Value),
	)

	if string(msg.Key) != resultKey {
		s.skip(string(msg.Key), "unexpected key", nil)
		return
	}

	frame, err := codec.Decode(msg.Value)
	if err != nil {
		s.skip(string(msg.Key), "undecodable payload", err)
		return
	}

	outcome, err := classifier.Classify(frame.Values)
	if err != nil {
		s.skip(string(msg.Key), "unclassifiable payload", err)
		return
	}

	// Result timestamps are rendered at whole-second resolution.
	at := time.Unix(int64(frame.T), 0)
	s.renderer.Render(at, s.sessionID, outcome)
	s.notifyMonitors(func(m types.Monitor) {
		m.InvokeOnResult(s.componentMetadata, outcome, at)
	})
}

func (s *EEGStreamer) skip(key, reason string, err error) {
	s.notifyMonitors(func(m types.Monitor) {
		m.InvokeOnSkippedMessage(s.componentMetadata, key)
	})
	s.NotifyLoggers(
		types.DebugLevel,
		"Inbound message skipped",
		"component", s.componentMetadata,
		"event", "SkippedMessage",
		"key", key,
		"reason", reason,
		"error", err,
	)
}

// drainAndClose consumes a bounded number of leftover result records and
// releases the bus. Runs at most once for the life of the streamer.
func (s *EEGStreamer) drainAndClose(ctx context.Context) {
	s.closeOnce.Do(func() {
		for i := 0; i < drainLimit; i++ {
			msg, err := s.bus.Poll(ctx, pollTimeout)
			if err != nil || msg == nil {
				break
			}
		}
		if err := s.bus.Close(); err != nil {
			s.NotifyLoggers(
				types.ErrorLevel,
				"Bus close failed",
				"component", s.componentMetadata,
				"event", "Close",
				"error", err,
			)
		}
	})
}
