// Package builder is the public assembly surface. It re-exports the internal
// component constructors and options so applications wire a streamer without
// importing internal packages directly.
package builder

import (
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// ComponentMetadata identifies a component in logs and telemetry.
type ComponentMetadata = types.ComponentMetadata

// Option configures a component of type T at construction time.
type Option[T any] = types.Option[T]

// SessionState is the pacing record threaded through the stream loop.
type SessionState = types.SessionState

// Outcome is a classified result from the inbound topic.
type Outcome = types.Outcome

// OutcomeKind enumerates the classification outcomes.
type OutcomeKind = types.OutcomeKind

const (
	OutcomeSeizure    = types.OutcomeSeizure
	OutcomeBackground = types.OutcomeBackground
	OutcomeUnknown    = types.OutcomeUnknown
)

// BusMessage is one raw inbound record.
type BusMessage = types.BusMessage

// BusDeps injects concrete driver handles into a bus client.
type BusDeps = types.BusDeps

// BusError wraps a transport-level failure.
type BusError = types.BusError

// ErrPartitionExhausted reports a benign end-of-partition condition.
var ErrPartitionExhausted = types.ErrPartitionExhausted
