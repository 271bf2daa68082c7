package monitor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/monitor"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

func TestMonitorInvokesRegisteredCallbacks(t *testing.T) {
	var gotSession, gotTopic string
	var results []types.Outcome

	m := monitor.NewMonitor(
		monitor.WithOnStreamStartFunc(func(c types.ComponentMetadata, sessionID, topic string) {
			gotSession = sessionID
			gotTopic = topic
		}),
		monitor.WithOnResultFunc(func(c types.ComponentMetadata, o types.Outcome, at time.Time) {
			results = append(results, o)
		}),
	)

	src := types.ComponentMetadata{ID: "src", Type: "STREAMER"}
	m.InvokeOnStreamStart(src, "session-1", "eeg.samples")
	m.InvokeOnResult(src, types.Outcome{Kind: types.OutcomeSeizure, Label: "pres"}, time.Now())
	m.InvokeOnResult(src, types.Outcome{Kind: types.OutcomeBackground, Label: "bckg"}, time.Now())

	if gotSession != "session-1" || gotTopic != "eeg.samples" {
		t.Errorf("stream start callback got (%q, %q)", gotSession, gotTopic)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 result callbacks, got %d", len(results))
	}
	if results[0].Kind != types.OutcomeSeizure || results[1].Kind != types.OutcomeBackground {
		t.Errorf("result callbacks out of order: %+v", results)
	}
}

func TestMonitorMultipleCallbacksAllFire(t *testing.T) {
	calls := 0
	m := monitor.NewMonitor()
	m.RegisterOnBusError(
		func(c types.ComponentMetadata, op string, err error) { calls++ },
		func(c types.ComponentMetadata, op string, err error) { calls++ },
	)

	m.InvokeOnBusError(types.ComponentMetadata{}, "publish", errors.New("broker down"))
	if calls != 2 {
		t.Errorf("expected both callbacks to fire, got %d calls", calls)
	}
}

func TestMonitorInvokeWithoutCallbacksIsNoop(t *testing.T) {
	m := monitor.NewMonitor()

	// None of these may panic with an empty registry.
	m.InvokeOnStreamStart(types.ComponentMetadata{}, "s", "t")
	m.InvokeOnStreamStop(types.ComponentMetadata{}, 10, time.Second)
	m.InvokeOnSamplePublished(types.ComponentMetadata{}, 1, 4, 128)
	m.InvokeOnBatchFlush(types.ComponentMetadata{}, "t", 256)
	m.InvokeOnResult(types.ComponentMetadata{}, types.Outcome{}, time.Now())
	m.InvokeOnSkippedMessage(types.ComponentMetadata{}, "other")
	m.InvokeOnDriftCorrection(types.ComponentMetadata{}, 1.5, time.Millisecond)
	m.InvokeOnRateUnderflow(types.ComponentMetadata{}, -40)
	m.InvokeOnBusError(types.ComponentMetadata{}, "poll", errors.New("x"))
	m.InvokeOnPartitionExhausted(types.ComponentMetadata{}, "t")
}

func TestMonitorMetadata(t *testing.T) {
	m := monitor.NewMonitor()
	if m.GetComponentMetadata().ID == "" {
		t.Error("expected a generated component ID")
	}
	if m.GetComponentMetadata().Type != "MONITOR" {
		t.Errorf("unexpected component type %q", m.GetComponentMetadata().Type)
	}

	m.SetComponentMetadata("operator-console", "fixed-id")
	if m.GetComponentMetadata().Name != "operator-console" || m.GetComponentMetadata().ID != "fixed-id" {
		t.Errorf("metadata not applied: %+v", m.GetComponentMetadata())
	}
}
