// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/photonbench/uc2000/internal/capture"
	"github.com/photonbench/uc2000/pkg/remote"
	"github.com/photonbench/uc2000/pkg/uc2000"
)

var statusTimeout time.Duration

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Request the device status block",
	Long: `Send a status request and dump whatever bytes the device answers
with. The response layout varies between firmware revisions, so it is
shown as a raw hex dump rather than decoded fields.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 2*time.Second, "How long to wait for the response")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	frame, err := remote.Encode(remote.CmdStatusRequest, nil, !noChecksum)
	if err != nil {
		return err
	}

	fmt.Printf("-> %s\n", uc2000.FormatFrame(frame))
	if _, err := s.conn.Write(frame); err != nil {
		return err
	}
	if s.capw != nil {
		_ = s.capw.Record(capture.DirTransmit, frame)
	}

	response, err := readResponse(s.conn, statusTimeout)
	if err != nil {
		return err
	}
	if len(response) == 0 {
		return fmt.Errorf("no response within %s", statusTimeout)
	}

	if s.capw != nil {
		_ = s.capw.Record(capture.DirReceive, response)
	}

	fmt.Printf("<- %s\n", uc2000.FormatFrame(response))
	annotateResponse(response)
	return nil
}

// readResponse drains bytes from the connection until the link goes quiet
// or the timeout elapses. Reads happen on a goroutine because WebSocket
// reads cannot be given a deadline through the Connection interface.
func readResponse(conn Connection, timeout time.Duration) ([]byte, error) {
	type chunk struct {
		data []byte
		err  error
	}
	chunks := make(chan chunk)

	go func() {
		for {
			buf := make([]byte, 64)
			n, err := conn.Read(buf)
			select {
			case chunks <- chunk{data: buf[:n], err: err}:
			case <-time.After(timeout):
				return
			}
			if err != nil {
				return
			}
		}
	}()

	var response []byte
	deadline := time.After(timeout)
	for {
		// After the first bytes arrive, a short quiet window ends the
		// response instead of the full timeout.
		wait := deadline
		if len(response) > 0 {
			wait = time.After(200 * time.Millisecond)
		}
		select {
		case c := <-chunks:
			response = append(response, c.data...)
			if c.err != nil {
				if len(response) > 0 {
					return response, nil
				}
				return nil, c.err
			}
		case <-wait:
			return response, nil
		}
	}
}

// annotateResponse prints the one-byte acknowledgements by name.
func annotateResponse(response []byte) {
	if len(response) != 1 {
		return
	}
	switch response[0] {
	case remote.ACK:
		fmt.Println("ACK")
	case remote.NAK:
		fmt.Println("NAK (checksum mismatch or malformed frame)")
	}
}
