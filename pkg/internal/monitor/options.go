package monitor

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// WithLogger attaches loggers to the monitor.
func WithLogger(l ...types.Logger) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.ConnectLogger(l...)
	}
}

// WithOnStreamStartFunc registers stream start callbacks.
func WithOnStreamStartFunc(callback ...func(c types.ComponentMetadata, sessionID, topic string)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnStreamStart(callback...)
	}
}

// WithOnStreamStopFunc registers stream stop callbacks.
func WithOnStreamStopFunc(callback ...func(c types.ComponentMetadata, ticks int, elapsed time.Duration)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnStreamStop(callback...)
	}
}

// WithOnSamplePublishedFunc registers per-sample publish callbacks.
func WithOnSamplePublishedFunc(callback ...func(c types.ComponentMetadata, tick int, keyBytes, valueBytes int)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnSamplePublished(callback...)
	}
}

// WithOnBatchFlushFunc registers batch flush callbacks.
func WithOnBatchFlushFunc(callback ...func(c types.ComponentMetadata, topic string, records int)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnBatchFlush(callback...)
	}
}

// WithOnResultFunc registers classification result callbacks.
func WithOnResultFunc(callback ...func(c types.ComponentMetadata, o types.Outcome, at time.Time)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnResult(callback...)
	}
}

// WithOnSkippedMessageFunc registers skipped message callbacks.
func WithOnSkippedMessageFunc(callback ...func(c types.ComponentMetadata, key string)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnSkippedMessage(callback...)
	}
}

// WithOnDriftCorrectionFunc registers pacing adjustment callbacks.
func WithOnDriftCorrectionFunc(callback ...func(c types.ComponentMetadata, deviationMs float64, newDelay time.Duration)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnDriftCorrection(callback...)
	}
}

// WithOnRateUnderflowFunc registers underflow clamp callbacks.
func WithOnRateUnderflowFunc(callback ...func(c types.ComponentMetadata, deviationMs float64)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnRateUnderflow(callback...)
	}
}

// WithOnBusErrorFunc registers transport failure callbacks.
func WithOnBusErrorFunc(callback ...func(c types.ComponentMetadata, op string, err error)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnBusError(callback...)
	}
}

// WithOnPartitionExhaustedFunc registers partition exhaustion callbacks.
func WithOnPartitionExhaustedFunc(callback ...func(c types.ComponentMetadata, topic string)) types.Option[types.Monitor] {
	return func(m types.Monitor) {
		m.RegisterOnPartitionExhausted(callback...)
	}
}
