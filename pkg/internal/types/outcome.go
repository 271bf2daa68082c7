package types

// OutcomeKind enumerates the closed set of classification outcomes carried by
// inbound result frames. The mapping from label to kind is exhaustive: any
// label outside the known set maps to OutcomeUnknown with the label preserved.
type OutcomeKind int

const (
	OutcomeSeizure    OutcomeKind = iota // "pres": a seizure is predicted
	OutcomeBackground                    // "bckg": background activity, all good
	OutcomeUnknown                       // any other label
)

// Outcome is the classified result of one inbound frame.
type Outcome struct {
	Kind  OutcomeKind
	Label string // the raw first value element of the result payload
}

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSeizure:
		return "seizure"
	case OutcomeBackground:
		return "background"
	default:
		return "unknown"
	}
}
