package types

import "time"

// Monitor provides callback hooks for stream, pacing, and bus telemetry.
// Components invoke the hooks as events occur; observers register callbacks
// through the monitor package options.
type Monitor interface {
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// Stream lifecycle
	RegisterOnStreamStart(...func(c ComponentMetadata, sessionID, topic string))
	InvokeOnStreamStart(c ComponentMetadata, sessionID, topic string)
	RegisterOnStreamStop(...func(c ComponentMetadata, ticks int, elapsed time.Duration))
	InvokeOnStreamStop(c ComponentMetadata, ticks int, elapsed time.Duration)

	// Outbound path
	RegisterOnSamplePublished(...func(c ComponentMetadata, tick int, keyBytes, valueBytes int))
	InvokeOnSamplePublished(c ComponentMetadata, tick int, keyBytes, valueBytes int)
	RegisterOnBatchFlush(...func(c ComponentMetadata, topic string, records int))
	InvokeOnBatchFlush(c ComponentMetadata, topic string, records int)

	// Inbound path
	RegisterOnResult(...func(c ComponentMetadata, o Outcome, at time.Time))
	InvokeOnResult(c ComponentMetadata, o Outcome, at time.Time)
	RegisterOnSkippedMessage(...func(c ComponentMetadata, key string))
	InvokeOnSkippedMessage(c ComponentMetadata, key string)

	// Pacing
	RegisterOnDriftCorrection(...func(c ComponentMetadata, deviationMs float64, newDelay time.Duration))
	InvokeOnDriftCorrection(c ComponentMetadata, deviationMs float64, newDelay time.Duration)
	RegisterOnRateUnderflow(...func(c ComponentMetadata, deviationMs float64))
	InvokeOnRateUnderflow(c ComponentMetadata, deviationMs float64)

	// Transport faults
	RegisterOnBusError(...func(c ComponentMetadata, op string, err error))
	InvokeOnBusError(c ComponentMetadata, op string, err error)
	RegisterOnPartitionExhausted(...func(c ComponentMetadata, topic string))
	InvokeOnPartitionExhausted(c ComponentMetadata, topic string)
}
