// Package classifier maps decoded result payloads onto the closed Outcome set.
package classifier

import (
	"github.com/neuroline/eegstream/pkg/internal/codec"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

// Labels the remote classifier emits as the first value element.
const (
	LabelSeizure    = "pres"
	LabelBackground = "bckg"
)

// Classify assigns an outcome from the first value element, compared
// case-exact. Anything outside the known label set maps to OutcomeUnknown
// with the label preserved. An empty value list is a malformed result frame.
func Classify(values []codec.Value) (types.Outcome, error) {
	if len(values) == 0 {
		return types.Outcome{}, &codec.DecodeError{Reason: "result payload has no value elements"}
	}

	label := values[0].Label()
	switch label {
	case LabelSeizure:
		return types.Outcome{Kind: types.OutcomeSeizure, Label: label}, nil
	case LabelBackground:
		return types.Outcome{Kind: types.OutcomeBackground, Label: label}, nil
	default:
		return types.Outcome{Kind: types.OutcomeUnknown, Label: label}, nil
	}
}
