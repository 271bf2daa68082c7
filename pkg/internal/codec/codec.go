// Package codec implements the textual frame format shared by outbound sample
// messages and inbound result messages:
//
//	{'t':<timestamp>,'v':[<values>]}
//
// Outbound frames carry 6-decimal fixed-point channel readings; inbound frames
// carry string labels in the same structural shape. Decoding is schema
// validated and fails closed with a DecodeError rather than guessing.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// EncodeError reports a non-finite sample value that would corrupt the wire
// format. The affected tick's publish is skipped; the stream continues.
type EncodeError struct {
	Index int
	Value float64
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("codec: non-finite value %v at channel %d", e.Value, e.Index)
}

// DecodeError reports a malformed payload. It is local to the decode call;
// the stream loop skips the message and continues.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("codec: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Value is one element of a frame's value list: either a numeric channel
// reading or a string label, depending on which channel the frame came from.
type Value struct {
	num     float64
	label   string
	isLabel bool
}

// FloatValue wraps a numeric reading.
func FloatValue(f float64) Value { return Value{num: f} }

// LabelValue wraps a string label.
func LabelValue(s string) Value { return Value{label: s, isLabel: true} }

// IsLabel reports whether the element decoded as a string label.
func (v Value) IsLabel() bool { return v.isLabel }

// Float returns the numeric reading (zero for labels).
func (v Value) Float() float64 { return v.num }

// Label returns the element's textual form: the label itself, or the numeric
// reading formatted the way it appears on the wire.
func (v Value) Label() string {
	if v.isLabel {
		return v.label
	}
	return strconv.FormatFloat(v.num, 'f', 6, 64)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &DecodeError{Reason: "empty value element"}
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = LabelValue(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = FloatValue(f)
	return nil
}

// Frame is one decoded wire message.
type Frame struct {
	T      float64
	Values []Value
}

// Floats extracts the numeric readings in order. Label elements contribute
// their zero value; callers on the sample channel never see labels.
func (f Frame) Floats() []float64 {
	out := make([]float64, len(f.Values))
	for i, v := range f.Values {
		out[i] = v.Float()
	}
	return out
}

// Encode serializes a sample row into the wire payload, preserving channel
// order. Any NaN or infinite reading yields an EncodeError.
func Encode(t float64, values []float64) ([]byte, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, &EncodeError{Index: -1, Value: t}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &EncodeError{Index: i, Value: v}
		}
	}

	buf := make([]byte, 0, 16+12*len(values))
	buf = append(buf, "{'t':"...)
	buf = strconv.AppendFloat(buf, t, 'f', 6, 64)
	buf = append(buf, ",'v':["...)
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendFloat(buf, v, 'f', 6, 64)
	}
	buf = append(buf, "]}"...)
	return buf, nil
}

// wireFrame is the schema the payload must satisfy. Pointers distinguish a
// missing key from a zero value so decoding can fail closed.
type wireFrame struct {
	T *float64 `json:"t"`
	V *[]Value `json:"v"`
}

// Decode parses a wire payload into a Frame. Both payload shapes are
// tolerated: numeric sample rows and string result labels. Single-quoted
// payloads (the wire's native form) are normalized before parsing; the
// payload grammar has no string escapes, so the substitution is lossless.
func Decode(raw []byte) (Frame, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Frame{}, &DecodeError{Reason: "empty payload"}
	}

	normalized := bytes.ReplaceAll(raw, []byte{'\''}, []byte{'"'})

	var wf wireFrame
	if err := json.Unmarshal(normalized, &wf); err != nil {
		return Frame{}, &DecodeError{Reason: "malformed payload", Err: err}
	}
	if wf.T == nil {
		return Frame{}, &DecodeError{Reason: "payload missing 't' key"}
	}
	if wf.V == nil {
		return Frame{}, &DecodeError{Reason: "payload missing 'v' key"}
	}

	return Frame{T: *wf.T, Values: *wf.V}, nil
}
