package monitor

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// RegisterOnStreamStart adds callbacks fired when a streaming session begins.
func (m *Monitor) RegisterOnStreamStart(callback ...func(c types.ComponentMetadata, sessionID, topic string)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onStreamStartCallbacks = append(m.onStreamStartCallbacks, callback...)
}

func (m *Monitor) InvokeOnStreamStart(c types.ComponentMetadata, sessionID, topic string) {
	for _, cb := range m.snapshotOnStreamStart() {
		cb(c, sessionID, topic)
	}
	m.NotifyLoggers(
		types.InfoLevel,
		"Stream session started",
		"component", m.componentMetadata,
		"event", "OnStreamStart",
		"source", c,
		"session_id", sessionID,
		"topic", topic,
	)
}

// RegisterOnStreamStop adds callbacks fired when a streaming session ends.
func (m *Monitor) RegisterOnStreamStop(callback ...func(c types.ComponentMetadata, ticks int, elapsed time.Duration)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onStreamStopCallbacks = append(m.onStreamStopCallbacks, callback...)
}

func (m *Monitor) InvokeOnStreamStop(c types.ComponentMetadata, ticks int, elapsed time.Duration) {
	for _, cb := range m.snapshotOnStreamStop() {
		cb(c, ticks, elapsed)
	}
	m.NotifyLoggers(
		types.InfoLevel,
		"Stream session stopped",
		"component", m.componentMetadata,
		"event", "OnStreamStop",
		"source", c,
		"ticks", ticks,
		"elapsed", elapsed,
	)
}

// RegisterOnSamplePublished adds callbacks fired after each outbound sample.
func (m *Monitor) RegisterOnSamplePublished(callback ...func(c types.ComponentMetadata, tick int, keyBytes, valueBytes int)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onSamplePublishedCallbacks = append(m.onSamplePublishedCallbacks, callback...)
}

func (m *Monitor) InvokeOnSamplePublished(c types.ComponentMetadata, tick int, keyBytes, valueBytes int) {
	for _, cb := range m.snapshotOnSamplePublished() {
		cb(c, tick, keyBytes, valueBytes)
	}
}

// RegisterOnBatchFlush adds callbacks fired when a pending batch is written out.
func (m *Monitor) RegisterOnBatchFlush(callback ...func(c types.ComponentMetadata, topic string, records int)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onBatchFlushCallbacks = append(m.onBatchFlushCallbacks, callback...)
}

func (m *Monitor) InvokeOnBatchFlush(c types.ComponentMetadata, topic string, records int) {
	for _, cb := range m.snapshotOnBatchFlush() {
		cb(c, topic, records)
	}
	m.NotifyLoggers(
		types.DebugLevel,
		"Batch flushed",
		"component", m.componentMetadata,
		"event", "OnBatchFlush",
		"source", c,
		"topic", topic,
		"records", records,
	)
}

// RegisterOnResult adds callbacks fired for each decoded classification result.
func (m *Monitor) RegisterOnResult(callback ...func(c types.ComponentMetadata, o types.Outcome, at time.Time)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onResultCallbacks = append(m.onResultCallbacks, callback...)
}

func (m *Monitor) InvokeOnResult(c types.ComponentMetadata, o types.Outcome, at time.Time) {
	for _, cb := range m.snapshotOnResult() {
		cb(c, o, at)
	}
	m.NotifyLoggers(
		types.DebugLevel,
		"Classification result received",
		"component", m.componentMetadata,
		"event", "OnResult",
		"source", c,
		"outcome", o.Kind.String(),
		"label", o.Label,
	)
}

// RegisterOnSkippedMessage adds callbacks fired when an inbound message is
// dropped without classification.
func (m *Monitor) RegisterOnSkippedMessage(callback ...func(c types.ComponentMetadata, key string)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onSkippedMessageCallbacks = append(m.onSkippedMessageCallbacks, callback...)
}

func (m *Monitor) InvokeOnSkippedMessage(c types.ComponentMetadata, key string) {
	for _, cb := range m.snapshotOnSkippedMessage() {
		cb(c, key)
	}
}

// RegisterOnDriftCorrection adds callbacks fired on each pacing adjustment.
func (m *Monitor) RegisterOnDriftCorrection(callback ...func(c types.ComponentMetadata, deviationMs float64, newDelay time.Duration)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onDriftCorrectionCallbacks = append(m.onDriftCorrectionCallbacks, callback...)
}

func (m *Monitor) InvokeOnDriftCorrection(c types.ComponentMetadata, deviationMs float64, newDelay time.Duration) {
	for _, cb := range m.snapshotOnDriftCorrection() {
		cb(c, deviationMs, newDelay)
	}
}

// RegisterOnRateUnderflow adds callbacks fired when a correction is clamped.
func (m *Monitor) RegisterOnRateUnderflow(callback ...func(c types.ComponentMetadata, deviationMs float64)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onRateUnderflowCallbacks = append(m.onRateUnderflowCallbacks, callback...)
}

func (m *Monitor) InvokeOnRateUnderflow(c types.ComponentMetadata, deviationMs float64) {
	for _, cb := range m.snapshotOnRateUnderflow() {
		cb(c, deviationMs)
	}
	m.NotifyLoggers(
		types.WarnLevel,
		"Pacing delay clamped to zero",
		"component", m.componentMetadata,
		"event", "OnRateUnderflow",
		"source", c,
		"deviation_ms", deviationMs,
	)
}

// RegisterOnBusError adds callbacks fired for transport failures.
func (m *Monitor) RegisterOnBusError(callback ...func(c types.ComponentMetadata, op string, err error)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onBusErrorCallbacks = append(m.onBusErrorCallbacks, callback...)
}

func (m *Monitor) InvokeOnBusError(c types.ComponentMetadata, op string, err error) {
	for _, cb := range m.snapshotOnBusError() {
		cb(c, op, err)
	}
	m.NotifyLoggers(
		types.ErrorLevel,
		"Bus operation failed",
		"component", m.componentMetadata,
		"event", "OnBusError",
		"source", c,
		"op", op,
		"error", err,
	)
}

// RegisterOnPartitionExhausted adds callbacks fired when the result topic has
// no further messages.
func (m *Monitor) RegisterOnPartitionExhausted(callback ...func(c types.ComponentMetadata, topic string)) {
	m.callbackLock.Lock()
	defer m.callbackLock.Unlock()
	m.onPartitionExhaustedCallbacks = append(m.onPartitionExhaustedCallbacks, callback...)
}

func (m *Monitor) InvokeOnPartitionExhausted(c types.ComponentMetadata, topic string) {
	for _, cb := range m.snapshotOnPartitionExhausted() {
		cb(c, topic)
	}
	m.NotifyLoggers(
		types.InfoLevel,
		"Result partition exhausted",
		"component", m.componentMetadata,
		"event", "OnPartitionExhausted",
		"source", c,
		"topic", topic,
	)
}
