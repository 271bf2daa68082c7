package kafkaclient

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/neuroline/eegstream/pkg/internal/types"
	"github.com/segmentio/kafka-go"
)

// messageWriter and messageFetcher are the slices of the kafka-go surface the
// client touches. Tests inject fakes; production code injects *kafka.Writer
// and *kafka.Reader or lets the client build them from brokers.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageFetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

func (c *KafkaClient) ensureWriter() (messageWriter, error) {
	if c.producer != nil {
		return c.producer, nil
	}
	if len(c.brokers) == 0 {
		return nil, &types.BusError{Op: "publish", Err: fmt.Errorf("no producer and no brokers configured")}
	}

	// Topic is carried per message so one writer serves any topic. The hash
	// balancer keeps all records with the same montage key on one partition,
	// preserving per-key source order for downstream consumers.
	c.producer = &kafka.Writer{
		Addr:         kafka.TCP(c.brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	c.NotifyLoggers(
		types.InfoLevel,
		"Kafka writer created",
		"component", c.componentMetadata,
		"event", "WriterCreated",
		"brokers", c.brokers,
		"topic", c.sampleTopic,
	)
	return c.producer, nil
}

func (c *KafkaClient) ensureReader() (messageFetcher, error) {
	if c.consumer != nil {
		return c.consumer, nil
	}
	if len(c.brokers) == 0 || c.resultTopic == "" {
		return nil, &types.BusError{Op: "poll", Err: fmt.Errorf("no consumer and no brokers/topic configured")}
	}

	// A fresh consumer group starts from the earliest offset so results
	// already on the topic are not skipped.
	c.consumer = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.brokers,
		Topic:       c.resultTopic,
		GroupID:     c.groupID,
		MaxBytes:    defaultReaderBytes,
		StartOffset: kafka.FirstOffset,
	})
	c.NotifyLoggers(
		types.InfoLevel,
		"Kafka reader created",
		"component", c.componentMetadata,
		"event", "ReaderCreated",
		"brokers", c.brokers,
		"topic", c.resultTopic,
		"group", c.groupID,
	)
	return c.consumer, nil
}

// classifyFetchErr maps driver errors onto the bus error taxonomy. A timeout
// is an empty poll window, io.EOF is partition exhaustion, anything else is a
// transport fault.
func classifyFetchErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, io.EOF):
		return types.ErrPartitionExhausted
	default:
		return &types.BusError{Op: "poll", Err: err}
	}
}

func (c *KafkaClient) takePending() []pendingRecord {
	c.pendingLock.Lock()
	defer c.pendingLock.Unlock()
	batch := c.pending
	c.pending = nil
	return batch
}

func (c *KafkaClient) toKafkaMessages(batch []pendingRecord) []kafka.Message {
	msgs := make([]kafka.Message, len(batch))
	for i, rec := range batch {
		msgs[i] = kafka.Message{
			Topic: c.sampleTopic,
			Key:   rec.key,
			Value: rec.value,
		}
	}
	return msgs
}
