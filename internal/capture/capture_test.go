package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.cbor")

	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frames := [][]byte{
		{0x5B, 0x75, 0x8A},
		{0x5B, 0x7F, 20, 0x76},
		{0x7E},
	}
	for _, f := range frames {
		if err := w.Record(DirTransmit, f); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	records, err := ReadAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != len(frames) {
		t.Fatalf("decoded %d records, want %d", len(records), len(frames))
	}
	for i, rec := range records {
		if rec.Direction != DirTransmit {
			t.Errorf("record %d direction = %q, want tx", i, rec.Direction)
		}
		if !bytes.Equal(rec.Frame, frames[i]) {
			t.Errorf("record %d frame = % X, want % X", i, rec.Frame, frames[i])
		}
		if rec.Time.IsZero() {
			t.Errorf("record %d has a zero timestamp", i)
		}
	}
}

func TestOpen_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.cbor")

	for i := 0; i < 2; i++ {
		w, err := Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if err := w.Record(DirTransmit, []byte{0x7E}); err != nil {
			t.Fatalf("Record: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	records, err := ReadAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("decoded %d records after two sessions, want 2", len(records))
	}
}
