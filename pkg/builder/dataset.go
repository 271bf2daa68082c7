package builder

import (
	"io"

	"github.com/neuroline/eegstream/pkg/internal/dataset"
	"github.com/neuroline/eegstream/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// SampleSource yields successive sample rows in capture order.
type SampleSource = types.SampleSource

// Dataset is an in-memory recording replayed column by column.
type Dataset = dataset.Dataset

// LoadRecording reads a channels-by-samples CSV recording from disk.
func LoadRecording(path string) (*Dataset, error) {
	return dataset.LoadCSV(path)
}

// ReadRecording parses a channels-by-samples CSV recording from r.
func ReadRecording(r io.Reader) (*Dataset, error) {
	return dataset.ReadCSV(r)
}

// RecordingFromMatrix wraps an existing matrix as a recording.
func RecordingFromMatrix(data *mat.Dense) *Dataset {
	return dataset.FromMatrix(data)
}
