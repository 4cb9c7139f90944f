// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

// Package capture writes transmitted frames to an append-only CBOR log,
// one record per frame. The log is a plain concatenation of CBOR items so
// captures survive a crash up to the last complete record.
package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Frame directions.
const (
	DirTransmit = "tx"
	DirReceive  = "rx"
)

// Record is one captured frame.
type Record struct {
	Time      time.Time `cbor:"1,keyasint"`
	Direction string    `cbor:"2,keyasint"`
	Frame     []byte    `cbor:"3,keyasint"`
}

// Writer appends frame records to a capture file.
type Writer struct {
	f   *os.File
	enc *cbor.Encoder
}

// Open opens (or creates) the capture file at path for appending.
func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	return &Writer{f: f, enc: cbor.NewEncoder(f)}, nil
}

// Record appends one frame with the current timestamp.
func (w *Writer) Record(direction string, frame []byte) error {
	rec := Record{
		Time:      time.Now().UTC(),
		Direction: direction,
		Frame:     append([]byte(nil), frame...),
	}
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to write capture record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}

// ReadAll decodes every record from a capture stream.
func ReadAll(r io.Reader) ([]Record, error) {
	dec := cbor.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("failed to decode capture record: %w", err)
		}
		records = append(records, rec)
	}
}
