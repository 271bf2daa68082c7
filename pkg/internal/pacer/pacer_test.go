package pacer_test

import (
	"math"
	"testing"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/monitor"
	"github.com/neuroline/eegstream/pkg/internal/pacer"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

func TestInitialStateDefaults(t *testing.T) {
	p := pacer.NewPacer()
	state := p.InitialState()

	want := time.Duration(0.8 / 256.0 * float64(time.Second))
	if state.Delay != want {
		t.Errorf("initial delay = %v, want %v", state.Delay, want)
	}
	if state.TickCount != 1 {
		t.Errorf("initial tick count = %d, want 1", state.TickCount)
	}
	if state.LastHeartbeat != state.StartTime {
		t.Errorf("heartbeat %v and start time %v should match at session start", state.LastHeartbeat, state.StartTime)
	}
}

func TestAdjustLeavesDelayUntouchedBetweenCorrections(t *testing.T) {
	clock := time.Unix(0, 0)
	p := pacer.NewPacer(pacer.WithNowFunc(func() time.Time { return clock }))

	state := p.InitialState()
	initial := state.Delay

	// Counting starts at 1, so the correction lands on the 255th call.
	for i := 0; i < 254; i++ {
		clock = clock.Add(4 * time.Millisecond)
		state = p.Adjust(state)
		if state.Delay != initial {
			t.Fatalf("delay changed mid-interval at call %d: %v", i, state.Delay)
		}
		if state.TickCount == 0 {
			t.Fatalf("correction fired early at call %d", i)
		}
	}

	clock = clock.Add(4 * time.Millisecond)
	state = p.Adjust(state)
	if state.TickCount != 0 {
		t.Fatalf("expected correction on the interval boundary, tick count = %d", state.TickCount)
	}
	if state.Delay == initial {
		t.Error("expected the correction to move the delay")
	}
}

// Models a loop whose real cost per tick is the commanded delay plus a fixed
// 10ms of overhead per one-second interval. The feedback should converge the
// measured interval to within 1% of the target inside five corrections.
func TestAdjustConvergesOnSlowLoop(t *testing.T) {
	const (
		rate       = 256
		overheadS  = 0.010
		targetS    = 1.0
		maxCycles  = 5
		toleranceS = 0.010
	)

	clock := time.Unix(0, 0)
	p := pacer.NewPacer(pacer.WithNowFunc(func() time.Time { return clock }))

	state := p.InitialState()
	for cycle := 0; cycle < maxCycles; cycle++ {
		for {
			perTick := overheadS/rate + state.Delay.Seconds()
			clock = clock.Add(time.Duration(perTick * float64(time.Second)))
			state = p.Adjust(state)
			if state.TickCount == 0 {
				break
			}
		}
	}

	modeled := overheadS + rate*state.Delay.Seconds()
	if err := math.Abs(modeled - targetS); err > toleranceS {
		t.Errorf("after %d corrections the modeled interval is %.4fs (error %.4fs, tolerance %.4fs)",
			maxCycles, modeled, err, toleranceS)
	}
	if state.Delay < 0 {
		t.Errorf("delay went negative: %v", state.Delay)
	}
}

// A badly overrun interval produces a correction larger than the current
// delay. The delay must clamp to zero, never go negative, and the underflow
// hook must fire.
func TestAdjustClampsUnderflow(t *testing.T) {
	clock := time.Unix(0, 0)
	underflows := 0
	m := monitor.NewMonitor(
		monitor.WithOnRateUnderflowFunc(func(c types.ComponentMetadata, deviationMs float64) {
			underflows++
			if deviationMs >= 0 {
				t.Errorf("underflow reported with non-negative deviation %.2fms", deviationMs)
			}
		}),
	)

	p := pacer.NewPacer(
		pacer.WithNowFunc(func() time.Time { return clock }),
		pacer.WithMonitor(m),
	)

	state := p.InitialState()
	for state.TickCount != 0 {
		// Three seconds of wall time against a one-second target.
		clock = clock.Add(3 * time.Second / 256)
		state = p.Adjust(state)
	}

	if state.Delay != 0 {
		t.Errorf("expected delay clamped to zero, got %v", state.Delay)
	}
	if underflows != 1 {
		t.Errorf("expected exactly one underflow notification, got %d", underflows)
	}
}

// Whatever the measured durations, the returned delay must stay non-negative.
func TestDelayNeverNegative(t *testing.T) {
	clock := time.Unix(0, 0)
	p := pacer.NewPacer(pacer.WithNowFunc(func() time.Time { return clock }))

	advances := []time.Duration{
		0,
		time.Millisecond,
		10 * time.Second / 256,
		100 * time.Millisecond,
		3 * time.Second,
	}

	state := p.InitialState()
	for i := 0; i < 256*20; i++ {
		clock = clock.Add(advances[i%len(advances)])
		state = p.Adjust(state)
		if state.Delay < 0 {
			t.Fatalf("delay went negative on iteration %d: %v", i, state.Delay)
		}
	}
}

func TestPacerOptions(t *testing.T) {
	clock := time.Unix(0, 0)
	p := pacer.NewPacer(
		pacer.WithTargetInterval(500*time.Millisecond),
		pacer.WithSamplingRate(4),
		pacer.WithDampening(1.0),
		pacer.WithNowFunc(func() time.Time { return clock }),
	)

	// 500ms at 4Hz means a correction every 2 ticks.
	state := p.InitialState()
	wantDelay := time.Duration(0.8 / 4.0 * float64(time.Second))
	if state.Delay != wantDelay {
		t.Errorf("initial delay = %v, want %v", state.Delay, wantDelay)
	}

	clock = clock.Add(250 * time.Millisecond)
	state = p.Adjust(state)
	if state.TickCount != 0 {
		t.Errorf("expected correction after one adjustment at rate 4, tick count = %d", state.TickCount)
	}
}
