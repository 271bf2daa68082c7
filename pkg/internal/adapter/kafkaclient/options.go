package kafkaclient

import "github.com/neuroline/eegstream/pkg/internal/types"

// WithBusDeps injects broker addresses and optional driver handles.
func WithBusDeps(deps types.BusDeps) types.BusClientOption {
	return func(bc types.BusClient) {
		bc.SetBusDeps(deps)
	}
}

// WithTopics sets the outbound sample topic and inbound result topic.
func WithTopics(sampleTopic, resultTopic string) types.BusClientOption {
	return func(bc types.BusClient) {
		if c, ok := bc.(*KafkaClient); ok {
			c.SetTopics(sampleTopic, resultTopic)
		}
	}
}

// WithGroupID sets the consumer group for the result topic reader.
func WithGroupID(groupID string) types.BusClientOption {
	return func(bc types.BusClient) {
		if c, ok := bc.(*KafkaClient); ok {
			c.SetGroupID(groupID)
		}
	}
}

// WithBatchCap bounds the pending outbound buffer.
func WithBatchCap(n int) types.BusClientOption {
	return func(bc types.BusClient) {
		if c, ok := bc.(*KafkaClient); ok {
			c.SetBatchCap(n)
		}
	}
}

// WithLogger attaches loggers to the bus client.
func WithLogger(l ...types.Logger) types.BusClientOption {
	return func(bc types.BusClient) {
		bc.ConnectLogger(l...)
	}
}

// WithMonitor attaches monitors to the bus client.
func WithMonitor(m ...types.Monitor) types.BusClientOption {
	return func(bc types.BusClient) {
		bc.ConnectMonitor(m...)
	}
}
