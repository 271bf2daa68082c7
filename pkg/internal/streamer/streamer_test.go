package streamer_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/dataset"
	"github.com/neuroline/eegstream/pkg/internal/monitor"
	"github.com/neuroline/eegstream/pkg/internal/pacer"
	"github.com/neuroline/eegstream/pkg/internal/streamer"
	"github.com/neuroline/eegstream/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// fakeBus satisfies types.BusClient in memory. Published records accumulate
// in published; Poll serves inbound from a fixed queue and counts calls.
type fakeBus struct {
	mu        sync.Mutex
	published [][]byte
	keys      []string
	flushes   int
	inbound   []*types.BusMessage
	polls     int
	closed    bool
}

func (b *fakeBus) Publish(ctx context.Context, key, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys = append(b.keys, string(key))
	b.published = append(b.published, append([]byte(nil), value...))
	return nil
}

func (b *fakeBus) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushes++
	return nil
}

func (b *fakeBus) Poll(ctx context.Context, timeout time.Duration) (*types.BusMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.polls++
	if len(b.inbound) == 0 {
		return nil, nil
	}
	msg := b.inbound[0]
	b.inbound = b.inbound[1:]
	return msg, nil
}

func (b *fakeBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func (b *fakeBus) SetBusDeps(types.BusDeps)             {}
func (b *fakeBus) ConnectLogger(...types.Logger)        {}
func (b *fakeBus) ConnectMonitor(...types.Monitor)      {}
func (b *fakeBus) SetComponentMetadata(name, id string) {}

func (b *fakeBus) GetComponentMetadata() types.ComponentMetadata { return types.ComponentMetadata{} }

func (b *fakeBus) NotifyLoggers(types.LogLevel, string, ...interface{}) {}

type renderedLine struct {
	at        time.Time
	sessionID string
	outcome   types.Outcome
}

type fakeRenderer struct {
	headers int
	lines   []renderedLine
}

func (r *fakeRenderer) Header() { r.headers++ }

func (r *fakeRenderer) Render(at time.Time, sessionID string, o types.Outcome) {
	r.lines = append(r.lines, renderedLine{at: at, sessionID: sessionID, outcome: o})
}

// fakeClock drives both the streamer and the pacer. Each sleep advances the
// clock by a fixed step so tick durations are exact.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{t: time.Unix(1600000000, 0), step: step}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) sleep(time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
}

func wideRecording(t *testing.T, cols int) *dataset.Dataset {
	t.Helper()
	data := make([]float64, 2*cols)
	for i := range data {
		data[i] = float64(i)
	}
	return dataset.FromMatrix(mat.NewDense(2, cols, data))
}

func TestStartStopsAtDurationCap(t *testing.T) {
	clock := newFakeClock(time.Second / 256)
	bus := &fakeBus{}

	var stoppedTicks int
	m := monitor.NewMonitor(
		monitor.WithOnStreamStopFunc(func(c types.ComponentMetadata, ticks int, elapsed time.Duration) {
			stoppedTicks = ticks
		}),
	)

	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 600)),
		streamer.WithPacer(pacer.NewPacer(pacer.WithNowFunc(clock.now))),
		streamer.WithRenderer(&fakeRenderer{}),
		streamer.WithMaxStreamDuration(2*time.Second),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
		streamer.WithMonitor(m),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// One tick is 1/256s of simulated time, so the 2s cap trips after tick
	// 513 pushes elapsed past the limit.
	if stoppedTicks != 513 {
		t.Errorf("streamed %d ticks before the cap, want 513", stoppedTicks)
	}
	if !bus.closed {
		t.Error("bus not closed after Start returned")
	}
}

func TestStartStopsWhenSourceExhausted(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	bus := &fakeBus{}
	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 7)),
		streamer.WithPacer(pacer.NewPacer(pacer.WithNowFunc(clock.now))),
		streamer.WithRenderer(&fakeRenderer{}),
		streamer.WithMontage("1020"),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if len(bus.published) != 7 {
		t.Fatalf("published %d records, want 7", len(bus.published))
	}
	for i, key := range bus.keys {
		if key != "1020" {
			t.Errorf("record %d key = %q, want 1020", i, key)
		}
	}
	for i, payload := range bus.published {
		if !strings.HasPrefix(string(payload), "{'t':") {
			t.Errorf("record %d payload = %q", i, payload)
		}
	}
}

func TestFlushCadence(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	bus := &fakeBus{}
	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 8)),
		streamer.WithPacer(pacer.NewPacer(
			pacer.WithNowFunc(clock.now),
			pacer.WithSamplingRate(4),
		)),
		streamer.WithRenderer(&fakeRenderer{}),
		streamer.WithSamplingRate(4),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// At 4Hz with a 1s flush interval the batch drains every 4 ticks.
	if bus.flushes != 2 {
		t.Errorf("flushed %d times over 8 ticks at 4Hz, want 2", bus.flushes)
	}
}

func TestListenRendersSeizureResult(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	bus := &fakeBus{inbound: []*types.BusMessage{{
		Topic: "eeg.results",
		Key:   []byte("key"),
		Value: []byte("{'t':1600000042.000000,'v':['pres']}"),
	}}}
	console := &fakeRenderer{}

	var results []types.Outcome
	m := monitor.NewMonitor(
		monitor.WithOnResultFunc(func(c types.ComponentMetadata, o types.Outcome, at time.Time) {
			results = append(results, o)
		}),
	)

	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 8)),
		streamer.WithPacer(pacer.NewPacer(
			pacer.WithNowFunc(clock.now),
			pacer.WithSamplingRate(4),
		)),
		streamer.WithRenderer(console),
		streamer.WithSessionID("patient-7"),
		streamer.WithSamplingRate(4),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
		streamer.WithMonitor(m),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if console.headers != 1 {
		t.Errorf("header printed %d times, want 1", console.headers)
	}
	if len(console.lines) != 1 {
		t.Fatalf("rendered %d lines, want 1", len(console.lines))
	}
	line := console.lines[0]
	if line.outcome.Kind != types.OutcomeSeizure {
		t.Errorf("rendered outcome = %+v", line.outcome)
	}
	if line.sessionID != "patient-7" {
		t.Errorf("rendered session = %q", line.sessionID)
	}
	if line.at.Unix() != 1600000042 {
		t.Errorf("rendered timestamp = %v", line.at)
	}
	if len(results) != 1 {
		t.Errorf("expected one OnResult notification, got %d", len(results))
	}
}

func TestListenSkipsForeignKeys(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	bus := &fakeBus{inbound: []*types.BusMessage{{
		Key:   []byte("other"),
		Value: []byte("{'t':1.0,'v':['pres']}"),
	}}}
	console := &fakeRenderer{}

	var skipped []string
	m := monitor.NewMonitor(
		monitor.WithOnSkippedMessageFunc(func(c types.ComponentMetadata, key string) {
			skipped = append(skipped, key)
		}),
	)

	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 8)),
		streamer.WithPacer(pacer.NewPacer(
			pacer.WithNowFunc(clock.now),
			pacer.WithSamplingRate(4),
		)),
		streamer.WithRenderer(console),
		streamer.WithSamplingRate(4),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
		streamer.WithMonitor(m),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if len(console.lines) != 0 {
		t.Errorf("foreign-key message was rendered: %+v", console.lines)
	}
	if len(skipped) != 1 || skipped[0] != "other" {
		t.Errorf("skipped keys = %v, want [other]", skipped)
	}
}

func TestListenSkipsMalformedPayload(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	bus := &fakeBus{inbound: []*types.BusMessage{{
		Key:   []byte("key"),
		Value: []byte("not a frame"),
	}}}
	console := &fakeRenderer{}

	skips := 0
	m := monitor.NewMonitor(
		monitor.WithOnSkippedMessageFunc(func(c types.ComponentMetadata, key string) {
			skips++
		}),
	)

	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 8)),
		streamer.WithPacer(pacer.NewPacer(
			pacer.WithNowFunc(clock.now),
			pacer.WithSamplingRate(4),
		)),
		streamer.WithRenderer(console),
		streamer.WithSamplingRate(4),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
		streamer.WithMonitor(m),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if len(console.lines) != 0 {
		t.Errorf("malformed message was rendered: %+v", console.lines)
	}
	if skips != 1 {
		t.Errorf("expected one skip, got %d", skips)
	}
}

func TestStopDrainsBoundedAndCloses(t *testing.T) {
	clock := newFakeClock(time.Millisecond)

	// Endless inbound queue: the shutdown drain must stop on its own.
	inbound := make([]*types.BusMessage, 64)
	for i := range inbound {
		inbound[i] = &types.BusMessage{Key: []byte("key"), Value: []byte("{'t':1.0,'v':['bckg']}")}
	}
	bus := &fakeBus{inbound: inbound}

	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 1000)),
		streamer.WithPacer(pacer.NewPacer(pacer.WithNowFunc(clock.now))),
		streamer.WithRenderer(&fakeRenderer{}),
		streamer.WithNowFunc(clock.now),
	)

	ticks := 0
	s.SetSleepFunc(func(d time.Duration) {
		clock.sleep(d)
		ticks++
		if ticks == 5 {
			s.Stop()
		}
	})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// 5 ticks is below the listen cadence, so every poll belongs to the
	// shutdown drain.
	if bus.polls != 10 {
		t.Errorf("drained %d polls, want 10", bus.polls)
	}
	if !bus.closed {
		t.Error("bus not closed after Stop")
	}
}

func TestStartRejectsReuse(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	s := streamer.NewEEGStreamer(
		streamer.WithBus(&fakeBus{}),
		streamer.WithSource(wideRecording(t, 2)),
		streamer.WithPacer(pacer.NewPacer(pacer.WithNowFunc(clock.now))),
		streamer.WithRenderer(&fakeRenderer{}),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
	)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := s.Start(context.Background()); err == nil {
		t.Error("expected an error restarting a stopped streamer")
	}
}

func TestStartRejectsMissingWiring(t *testing.T) {
	s := streamer.NewEEGStreamer()
	if err := s.Start(context.Background()); err == nil {
		t.Error("expected an error with no components connected")
	}
}

func TestContextCancellationStopsLoop(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	bus := &fakeBus{}
	s := streamer.NewEEGStreamer(
		streamer.WithBus(bus),
		streamer.WithSource(wideRecording(t, 1000)),
		streamer.WithPacer(pacer.NewPacer(pacer.WithNowFunc(clock.now))),
		streamer.WithRenderer(&fakeRenderer{}),
		streamer.WithNowFunc(clock.now),
		streamer.WithSleepFunc(clock.sleep),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(bus.published) != 1 {
		t.Errorf("published %d records under a cancelled context, want 1", len(bus.published))
	}
	if !bus.closed {
		t.Error("bus not closed after cancellation")
	}
}
