// Package telemetry records per-frame game statistics as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// FrameRecord is one CSV row.
type FrameRecord struct {
	Frame       int     `csv:"frame"`
	Time        float64 `csv:"time"`
	Score       int     `csv:"score"`
	Asteroids   int     `csv:"asteroids"`
	Projectiles int     `csv:"projectiles"`
	ShipX       float64 `csv:"ship_x"`
	ShipY       float64 `csv:"ship_y"`
	Facing      float64 `csv:"facing"`
	Width       float64 `csv:"viewport_width"`
	Height      float64 `csv:"viewport_height"`
}

// Recorder buffers frame records and writes them in batches.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	flushEvery    int
	pending       []FrameRecord
	headerWritten bool
}

// NewRecorder creates a recorder writing to w, flushing every flushEvery records.
func NewRecorder(w io.Writer, flushEvery int) *Recorder {
	if flushEvery < 1 {
		flushEvery = 1
	}
	return &Recorder{
		w:          w,
		flushEvery: flushEvery,
		pending:    make([]FrameRecord, 0, flushEvery),
	}
}

// Create opens a recorder on a new file at path.
// Returns nil if path is empty (recording disabled).
func Create(path string, flushEvery int) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry file: %w", err)
	}
	r := NewRecorder(f, flushEvery)
	r.closer = f
	return r, nil
}

// Record queues a row, flushing once enough rows are pending.
func (r *Recorder) Record(rec FrameRecord) error {
	r.pending = append(r.pending, rec)
	if len(r.pending) >= r.flushEvery {
		return r.Flush()
	}
	return nil
}

// Flush writes all pending rows. The header is written with the first batch.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}

	var err error
	if r.headerWritten {
		err = gocsv.MarshalWithoutHeaders(r.pending, r.w)
	} else {
		err = gocsv.Marshal(r.pending, r.w)
	}
	if err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}

	r.headerWritten = true
	r.pending = r.pending[:0]
	return nil
}

// Close flushes pending rows and closes the underlying file, if any.
func (r *Recorder) Close() error {
	err := r.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
