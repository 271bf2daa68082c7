package kafkaclient

import (
	"context"
	"errors"
	"time"

	"github.com/neuroline/eegstream/pkg/internal/types"
)

// Publish buffers one outbound record. Records flush in publish order. When
// the pending buffer reaches the batch cap the batch is written inline under
// the caller's context rather than waiting for the next Flush.
func (c *KafkaClient) Publish(ctx context.Context, key, value []byte) error {
	rec := pendingRecord{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	}

	c.pendingLock.Lock()
	c.pending = append(c.pending, rec)
	full := len(c.pending) >= c.batchCap
	c.pendingLock.Unlock()

	if !full {
		return nil
	}

	c.NotifyLoggers(
		types.WarnLevel,
		"Pending buffer reached batch cap; flushing inline",
		"component", c.componentMetadata,
		"event", "InlineFlush",
		"batch_cap", c.batchCap,
	)
	return c.Flush(ctx)
}

// Flush writes the pending batch under the caller's deadline. On failure the
// batch is dropped, not retried; the caller decides whether that is fatal.
func (c *KafkaClient) Flush(ctx context.Context) error {
	batch := c.takePending()
	if len(batch) == 0 {
		return nil
	}

	w, err := c.ensureWriter()
	if err != nil {
		c.notifyMonitors(func(m types.Monitor) {
			m.InvokeOnBusError(c.componentMetadata, "flush", err)
		})
		return err
	}

	if err := w.WriteMessages(ctx, c.toKafkaMessages(batch)...); err != nil {
		busErr := &types.BusError{Op: "flush", Err: err}
		c.notifyMonitors(func(m types.Monitor) {
			m.InvokeOnBusError(c.componentMetadata, "flush", err)
		})
		c.NotifyLoggers(
			types.ErrorLevel,
			"Batch write failed; batch dropped",
			"component", c.componentMetadata,
			"event", "Flush",
			"topic", c.sampleTopic,
			"records", len(batch),
			"error", err,
		)
		return busErr
	}

	c.notifyMonitors(func(m types.Monitor) {
		m.InvokeOnBatchFlush(c.componentMetadata, c.sampleTopic, len(batch))
	})
	c.NotifyLoggers(
		types.DebugLevel,
		"Batch flushed",
		"component", c.componentMetadata,
		"event", "Flush",
		"topic", c.sampleTopic,
		"records", len(batch),
	)
	return nil
}

// Poll blocks for at most timeout waiting for one inbound record. An empty
// window returns (nil, nil). End of partition returns
// types.ErrPartitionExhausted; other driver failures return a *types.BusError.
func (c *KafkaClient) Poll(ctx context.Context, timeout time.Duration) (*types.BusMessage, error) {
	r, err := c.ensureReader()
	if err != nil {
		c.notifyMonitors(func(m types.Monitor) {
			m.InvokeOnBusError(c.componentMetadata, "poll", err)
		})
		return nil, err
	}

	windowCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, fetchErr := r.FetchMessage(windowCtx)
	if fetchErr != nil {
		switch classified := classifyFetchErr(fetchErr); {
		case classified == nil:
			return nil, nil
		case errors.Is(classified, types.ErrPartitionExhausted):
			c.notifyMonitors(func(m types.Monitor) {
				m.InvokeOnPartitionExhausted(c.componentMetadata, c.resultTopic)
			})
			return nil, classified
		default:
			c.notifyMonitors(func(m types.Monitor) {
				m.InvokeOnBusError(c.componentMetadata, "poll", fetchErr)
			})
			c.NotifyLoggers(
				types.ErrorLevel,
				"Fetch failed",
				"component", c.componentMetadata,
				"event", "Poll",
				"topic", c.resultTopic,
				"error", fetchErr,
			)
			return nil, classified
		}
	}

	return &types.BusMessage{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Key:       msg.Key,
		Value:     msg.Value,
	}, nil
}

// Close releases both driver handles. Safe to call with neither created.
func (c *KafkaClient) Close() error {
	var errs []error
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			errs = append(errs, err)
		}
		c.producer = nil
	}
	if c.consumer != nil {
		if err := c.consumer.Close(); err != nil {
			errs = append(errs, err)
		}
		c.consumer = nil
	}

	if len(errs) > 0 {
		err := &types.BusError{Op: "close", Err: errors.Join(errs...)}
		c.NotifyLoggers(
			types.ErrorLevel,
			"Close failed",
			"component", c.componentMetadata,
			"event", "Close",
			"error", err,
		)
		return err
	}
	return nil
}
