package builder

import (
	"time"

	"github.com/neuroline/eegstream/pkg/internal/monitor"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// NewMonitor creates a telemetry hook registry.
func NewMonitor(options ...types.Option[types.Monitor]) types.Monitor {
	return monitor.NewMonitor(options...)
}

// MonitorWithLogger adds a logger to the monitor.
func MonitorWithLogger(logger ...types.Logger) types.Option[types.Monitor] {
	return monitor.WithLogger(logger...)
}

// MonitorWithOnStreamStartFunc registers a callback for the OnStreamStart event.
func MonitorWithOnStreamStartFunc(callback ...func(c ComponentMetadata, sessionID, topic string)) types.Option[types.Monitor] {
	return monitor.WithOnStreamStartFunc(callback...)
}

// MonitorWithOnStreamStopFunc registers a callback for the OnStreamStop event.
func MonitorWithOnStreamStopFunc(callback ...func(c ComponentMetadata, ticks int, elapsed time.Duration)) types.Option[types.Monitor] {
	return monitor.WithOnStreamStopFunc(callback...)
}

// MonitorWithOnSamplePublishedFunc registers a callback for the OnSamplePublished event.
func MonitorWithOnSamplePublishedFunc(callback ...func(c ComponentMetadata, tick int, keyBytes, valueBytes int)) types.Option[types.Monitor] {
	return monitor.WithOnSamplePublishedFunc(callback...)
}

// MonitorWithOnBatchFlushFunc registers a callback for the OnBatchFlush event.
func MonitorWithOnBatchFlushFunc(callback ...func(c ComponentMetadata, topic string, records int)) types.Option[types.Monitor] {
	return monitor.WithOnBatchFlushFunc(callback...)
}

// MonitorWithOnResultFunc registers a callback for the OnResult event.
func MonitorWithOnResultFunc(callback ...func(c ComponentMetadata, o Outcome, at time.Time)) types.Option[types.Monitor] {
	return monitor.WithOnResultFunc(callback...)
}

// MonitorWithOnSkippedMessageFunc registers a callback for the OnSkippedMessage event.
func MonitorWithOnSkippedMessageFunc(callback ...func(c ComponentMetadata, key string)) types.Option[types.Monitor] {
	return monitor.WithOnSkippedMessageFunc(callback...)
}

// MonitorWithOnDriftCorrectionFunc registers a callback for the OnDriftCorrection event.
func MonitorWithOnDriftCorrectionFunc(callback ...func(c ComponentMetadata, deviationMs float64, newDelay time.Duration)) types.Option[types.Monitor] {
	return monitor.WithOnDriftCorrectionFunc(callback...)
}

// MonitorWithOnRateUnderflowFunc registers a callback for the OnRateUnderflow event.
func MonitorWithOnRateUnderflowFunc(callback ...func(c ComponentMetadata, deviationMs float64)) types.Option[types.Monitor] {
	return monitor.WithOnRateUnderflowFunc(callback...)
}

// MonitorWithOnBusErrorFunc registers a callback for the OnBusError event.
func MonitorWithOnBusErrorFunc(callback ...func(c ComponentMetadata, op string, err error)) types.Option[types.Monitor] {
	return monitor.WithOnBusErrorFunc(callback...)
}

// MonitorWithOnPartitionExhaustedFunc registers a callback for the OnPartitionExhausted event.
func MonitorWithOnPartitionExhaustedFunc(callback ...func(c ComponentMetadata, topic string)) types.Option[types.Monitor] {
	return monitor.WithOnPartitionExhaustedFunc(callback...)
}
