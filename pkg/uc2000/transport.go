// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package uc2000

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/photonbench/uc2000/internal/logging"
)

// Transport delivers one encoded frame to the controller. Fire-and-forget:
// the core never parses responses, and transport errors are passed through
// to the caller untranslated.
type Transport interface {
	Transmit(frame []byte) error
}

// WriterTransport adapts any io.Writer (a serial port, a WebSocket bridge)
// into a Transport. Each transmitted frame is logged at debug level and
// handed to an optional hook, used for frame capture.
type WriterTransport struct {
	w    io.Writer
	hook func(frame []byte)
}

// NewWriterTransport wraps w as a Transport.
func NewWriterTransport(w io.Writer) *WriterTransport {
	return &WriterTransport{w: w}
}

// OnTransmit registers a hook invoked with every successfully written
// frame.
func (t *WriterTransport) OnTransmit(hook func(frame []byte)) {
	t.hook = hook
}

// Transmit writes the frame to the underlying writer.
func (t *WriterTransport) Transmit(frame []byte) error {
	logging.Debug("transmit frame",
		zap.String("bytes", fmt.Sprintf("% X", frame)),
		zap.Int("length", len(frame)),
	)
	n, err := t.w.Write(frame)
	if err != nil {
		return err
	}
	if n < len(frame) {
		return io.ErrShortWrite
	}
	if t.hook != nil {
		t.hook(frame)
	}
	return nil
}
