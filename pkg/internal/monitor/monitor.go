// Package monitor implements the callback registry behind types.Monitor.
//
// A monitor is passive: it holds observer callbacks and fires them when a
// connected component invokes the matching hook. Callbacks run synchronously
// on the invoking goroutine and should return quickly.
package monitor

import (
	"sync"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
	"github.com/neuroline/eegstream/pkg/internal/utils"
)

// Monitor is the concrete hook registry.
type Monitor struct {
	componentMetadata types.ComponentMetadata

	loggers      []types.Logger
	loggersLock  sync.Mutex
	callbackLock sync.Mutex

	onStreamStartCallbacks        []func(c types.ComponentMetadata, sessionID, topic string)
	onStreamStopCallbacks         []func(c types.ComponentMetadata, ticks int, elapsed time.Duration)
	onSamplePublishedCallbacks    []func(c types.ComponentMetadata, tick int, keyBytes, valueBytes int)
	onBatchFlushCallbacks         []func(c types.ComponentMetadata, topic string, records int)
	onResultCallbacks             []func(c types.ComponentMetadata, o types.Outcome, at time.Time)
	onSkippedMessageCallbacks     []func(c types.ComponentMetadata, key string)
	onDriftCorrectionCallbacks    []func(c types.ComponentMetadata, deviationMs float64, newDelay time.Duration)
	onRateUnderflowCallbacks      []func(c types.ComponentMetadata, deviationMs float64)
	onBusErrorCallbacks           []func(c types.ComponentMetadata, op string, err error)
	onPartitionExhaustedCallbacks []func(c types.ComponentMetadata, topic string)
}

// NewMonitor constructs a monitor and applies the supplied options.
func NewMonitor(options ...types.Option[types.Monitor]) types.Monitor {
	m := &Monitor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MONITOR",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

func (m *Monitor) GetComponentMetadata() types.ComponentMetadata { return m.componentMetadata }

func (m *Monitor) SetComponentMetadata(name, id string) {
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
}
