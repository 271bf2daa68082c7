package types

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPartitionExhausted reports that the inbound channel reached the end of a
// partition. It is benign: the stream loop logs it in verbose mode and
// continues polling.
var ErrPartitionExhausted = errors.New("bus: end of partition reached")

// BusError wraps any other transport-level failure reported by the bus
// client. It is logged and swallowed by the stream loop; the design does not
// retry or back off.
type BusError struct {
	Op  string // the bus operation that failed: "publish", "flush", "poll", "close"
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bus: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

// BusMessage is one raw record received from the inbound channel.
type BusMessage struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Value     []byte
}

// BusDeps injects the concrete driver handles used by the bus client.
// Brokers is a fallback for constructing a reader when none is injected.
type BusDeps struct {
	Brokers  []string
	Producer any // e.g. *kafka.Writer
	Consumer any // e.g. *kafka.Reader
}

// BusProducer publishes sample frames. Publish buffers in source order;
// Flush drains the buffer under the caller's deadline, best effort.
type BusProducer interface {
	Publish(ctx context.Context, key, value []byte) error
	Flush(ctx context.Context) error
	Close() error
}

// BusConsumer polls the result channel. Poll blocks at most timeout and
// returns (nil, nil) when no message arrived in that window.
type BusConsumer interface {
	Poll(ctx context.Context, timeout time.Duration) (*BusMessage, error)
	Close() error
}

// BusClient combines both sides of one bus connection.
type BusClient interface {
	BusProducer
	BusConsumer

	SetBusDeps(BusDeps)
	ConnectLogger(...Logger)
	ConnectMonitor(...Monitor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}

// BusClientOption configures a BusClient at construction time.
type BusClientOption func(BusClient)
