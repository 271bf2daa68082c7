package monitor

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// The snapshot helpers copy the callback slice under the lock so callbacks
// run without holding it. Registration during an invoke takes effect on the
// next invoke.

func (m *Monitor) snapshotOnStreamStart() []func(c types.ComponentMetadata, sessionID, topic string) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, sessionID, topic string), len(m.onStreamStartCallbacks))
	copy(local, m.onStreamStartCallbacks)
	return local
}

func (m *Monitor) snapshotOnStreamStop() []func(c types.ComponentMetadata, ticks int, elapsed time.Duration) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, ticks int, elapsed time.Duration), len(m.onStreamStopCallbacks))
	copy(local, m.onStreamStopCallbacks)
	return local
}

func (m *Monitor) snapshotOnSamplePublished() []func(c types.ComponentMetadata, tick int, keyBytes, valueBytes int) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, tick int, keyBytes, valueBytes int), len(m.onSamplePublishedCallbacks))
	copy(local, m.onSamplePublishedCallbacks)
	return local
}

func (m *Monitor) snapshotOnBatchFlush() []func(c types.ComponentMetadata, topic string, records int) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, topic string, records int), len(m.onBatchFlushCallbacks))
	copy(local, m.onBatchFlushCallbacks)
	return local
}

func (m *Monitor) snapshotOnResult() []func(c types.ComponentMetadata, o types.Outcome, at time.Time) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, o types.Outcome, at time.Time), len(m.onResultCallbacks))
	copy(local, m.onResultCallbacks)
	return local
}

func (m *Monitor) snapshotOnSkippedMessage() []func(c types.ComponentMetadata, key string) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, key string), len(m.onSkippedMessageCallbacks))
	copy(local, m.onSkippedMessageCallbacks)
	return local
}

func (m *Monitor) snapshotOnDriftCorrection() []func(c types.ComponentMetadata, deviationMs float64, newDelay time.Duration) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, deviationMs float64, newDelay time.Duration), len(m.onDriftCorrectionCallbacks))
	copy(local, m.onDriftCorrectionCallbacks)
	return local
}

func (m *Monitor) snapshotOnRateUnderflow() []func(c types.ComponentMetadata, deviationMs float64) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, deviationMs float64), len(m.onRateUnderflowCallbacks))
	copy(local, m.onRateUnderflowCallbacks)
	return local
}

func (m *Monitor) snapshotOnBusError() []func(c types.ComponentMetadata, op string, err error) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, op string, err error), len(m.onBusErrorCallbacks))
	copy(local, m.onBusErrorCallbacks)
	return local
}

func (m *Monitor) snapshotOnPartitionExhausted() []func(c types.ComponentMetadata, topic string) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	local := make([]func(c types.ComponentMetadata, topic string), len(m.onPartitionExhaustedCallbacks))
	copy(local, m.onPartitionExhaustedCallbacks)
	return local
}
