// Package dataset loads recorded EEG sessions and replays them column by
// column. A recording is a dense channels-by-samples matrix; each call to
// Next yields one sample instant across every channel.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an in-memory recording positioned at a replay cursor. It
// implements types.SampleSource. Not safe for concurrent use; the stream
// loop is the only reader.
type Dataset struct {
	data     *mat.Dense
	channels int
	samples  int
	cursor   int
}

// LoadCSV reads a recording where each row is one channel and each column is
// one sample instant. Every row must have the same number of fields and every
// field must parse as a float.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return d, nil
}

// ReadCSV parses a channels-by-samples recording from r.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var rows [][]float64
	width := -1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		if width == -1 {
			width = len(record)
		} else if len(record) != width {
			return nil, fmt.Errorf("row %d has %d samples, want %d", len(rows)+1, len(record), width)
		}

		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", len(rows)+1, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 || width == 0 {
		return nil, fmt.Errorf("recording is empty")
	}

	data := mat.NewDense(len(rows), width, nil)
	for i, row := range rows {
		data.SetRow(i, row)
	}

	return &Dataset{
		data:     data,
		channels: len(rows),
		samples:  width,
	}, nil
}

// FromMatrix wraps an existing recording. The matrix is used directly, not
// copied.
func FromMatrix(data *mat.Dense) *Dataset {
	rows, cols := data.Dims()
	return &Dataset{
		data:     data,
		channels: rows,
		samples:  cols,
	}
}

// Tile extends the recording by repeating it n times end to end, so short
// recordings can sustain long streaming sessions. The cursor is preserved.
func (d *Dataset) Tile(n int) {
	if n <= 1 {
		return
	}

	tiled := mat.NewDense(d.channels, d.samples*n, nil)
	for rep := 0; rep < n; rep++ {
		tiled.Slice(0, d.channels, rep*d.samples, (rep+1)*d.samples).(*mat.Dense).Copy(d.data)
	}

	d.data = tiled
	d.samples *= n
}

// Next returns the sample column at the cursor and advances it. The second
// return is false once the recording is exhausted.
func (d *Dataset) Next() ([]float64, bool) {
	if d.cursor >= d.samples {
		return nil, false
	}
	col := mat.Col(nil, d.cursor, d.data)
	d.cursor++
	return col, true
}

// Rewind resets the cursor to the first sample.
func (d *Dataset) Rewind() {
	d.cursor = 0
}

// Channels reports the number of rows in the recording.
func (d *Dataset) Channels() int { return d.channels }

// Len reports the number of sample instants in the recording.
func (d *Dataset) Len() int { return d.samples }
