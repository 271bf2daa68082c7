// Package streamer runs the produce/flush/listen/sleep tick loop.
//
// Each tick publishes one sample row. On a flush boundary the pending batch
// drains to the bus; on a listen boundary the result topic is polled once and
// any classification rendered. The pacer then recomputes the per-tick pause
// so the average rate holds at the sampling frequency.
package streamer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
	"github.com/neuroline/eegstream/pkg/internal/utils"
)

// Lifecycle states. Stopped is terminal; a streamer cannot be restarted.
const (
	stateIdle int32 = iota
	stateStreaming
	stateStopped
)

const (
	defaultMaxStreamDuration = 10000 * time.Second
	defaultSamplingRate      = 256
	defaultFlushInterval     = 1 * time.Second
	defaultListenInterval    = 1 * time.Second
	defaultMontage           = "1020"

	flushTimeout = 1 * time.Second
	pollTimeout  = 100 * time.Millisecond
	drainLimit   = 10

	// resultKey is the sentinel key the classifier service stamps on result
	// records. Anything else on the topic is skipped.
	resultKey = "key"
)

// EEGStreamer is the concrete stream loop.
type EEGStreamer struct {
	componentMetadata types.ComponentMetadata

	loggers     []types.Logger
	loggersLock sync.Mutex
	monitors    []types.Monitor
	monitorLock sync.Mutex

	bus      types.BusClient
	source   types.SampleSource
	pacer    types.RateController
	renderer types.ResultRenderer

	sessionID   string
	montage     string
	sampleTopic string

	maxStreamDuration time.Duration
	samplingRate      int
	flushInterval     time.Duration
	listenInterval    time.Duration

	state     int32 // atomic
	closeOnce sync.Once

	now   func() time.Time
	sleep func(time.Duration)
}

// NewEEGStreamer constructs a stream loop. The bus, sample source, rate
// controller, and renderer are mandatory; Start reports their absence.
func NewEEGStreamer(options ...types.Option[types.Streamer]) *EEGStreamer {
	s := &EEGStreamer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "EEG_STREAMER",
		},
		montage:           defaultMontage,
		maxStreamDuration: defaultMaxStreamDuration,
		samplingRate:      defaultSamplingRate,
		flushInterval:     defaultFlushInterval,
		listenInterval:    defaultListenInterval,
		now:               time.Now,
		sleep:             time.Sleep,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

func (s *EEGStreamer) SetBus(bus types.BusClient)          { s.bus = bus }
func (s *EEGStreamer) SetSource(source types.SampleSource) { s.source = source }
func (s *EEGStreamer) SetPacer(pacer types.RateController) { s.pacer = pacer }
func (s *EEGStreamer) SetRenderer(r types.ResultRenderer)  { s.renderer = r }
func (s *EEGStreamer) SetSessionID(id string)              { s.sessionID = id }
func (s *EEGStreamer) SetSampleTopic(topic string)         { s.sampleTopic = topic }

// SetMontage sets the electrode montage name stamped as the outbound key.
func (s *EEGStreamer) SetMontage(montage string) {
	if montage != "" {
		s.montage = montage
	}
}

func (s *EEGStreamer) SetMaxStreamDuration(d time.Duration) {
	if d > 0 {
		s.maxStreamDuration = d
	}
}

func (s *EEGStreamer) SetSamplingRate(hz int) {
	if hz > 0 {
		s.samplingRate = hz
	}
}

func (s *EEGStreamer) SetFlushInterval(d time.Duration) {
	if d > 0 {
		s.flushInterval = d
	}
}

func (s *EEGStreamer) SetListenInterval(d time.Duration) {
	if d > 0 {
		s.listenInterval = d
	}
}

// SetNowFunc overrides the clock, used by tests.
func (s *EEGStreamer) SetNowFunc(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// SetSleepFunc overrides the per-tick pause, used by tests.
func (s *EEGStreamer) SetSleepFunc(sleep func(time.Duration)) {
	if sleep != nil {
		s.sleep = sleep
	}
}

func (s *EEGStreamer) GetComponentMetadata() types.ComponentMetadata { return s.componentMetadata }

func (s *EEGStreamer) SetComponentMetadata(name, id string) {
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}

func (s *EEGStreamer) currentState() int32 { return atomic.LoadInt32(&s.state) }

var _ types.Streamer = (*EEGStreamer)(nil)
