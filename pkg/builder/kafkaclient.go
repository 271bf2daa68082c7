package builder

import (
	"github.com/neuroline/eegstream/pkg/internal/adapter/kafkaclient"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// BusClient is the combined producer/consumer interface over the bus.
type BusClient = types.BusClient

// BusClientOption configures a bus client at construction time.
type BusClientOption = types.BusClientOption

// NewKafkaBusClient creates a Kafka-backed bus client.
func NewKafkaBusClient(options ...types.BusClientOption) types.BusClient {
	return kafkaclient.NewBusClient(options...)
}

// KafkaClientWithBusDeps injects broker addresses and optional driver handles.
func KafkaClientWithBusDeps(deps types.BusDeps) types.BusClientOption {
	return kafkaclient.WithBusDeps(deps)
}

// KafkaClientWithTopics sets the outbound sample topic and inbound result topic.
func KafkaClientWithTopics(sampleTopic, resultTopic string) types.BusClientOption {
	return kafkaclient.WithTopics(sampleTopic, resultTopic)
}

// KafkaClientWithGroupID sets the consumer group for the result topic reader.
func KafkaClientWithGroupID(groupID string) types.BusClientOption {
	return kafkaclient.WithGroupID(groupID)
}

// KafkaClientWithBatchCap bounds the pending outbound buffer.
func KafkaClientWithBatchCap(n int) types.BusClientOption {
	return kafkaclient.WithBatchCap(n)
}

// KafkaClientWithLogger adds a logger to the bus client.
func KafkaClientWithLogger(logger ...types.Logger) types.BusClientOption {
	return kafkaclient.WithLogger(logger...)
}

// KafkaClientWithMonitor adds a monitor to the bus client.
func KafkaClientWithMonitor(m ...types.Monitor) types.BusClientOption {
	return kafkaclient.WithMonitor(m...)
}
