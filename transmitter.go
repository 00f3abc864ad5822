package painter

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"os/exec"
	"strings"
)

// Transmitter delivers one encoded pixel to its destination address.
// Delivery is best-effort: a failure means that one pixel did not update,
// and the caller records it without retrying.
type Transmitter interface {
	Transmit(ctx context.Context, addr netip.Addr) error
}

// PingTransmitter delivers a pixel by invoking the system ping binary
// with a single ICMPv6 echo request, the same mechanism the canvas
// service listens for. Output is discarded; the exit status decides
// success.
type PingTransmitter struct {
	// Verbose echoes each ping command line to Writer before running it.
	Verbose bool
	Writer  io.Writer
}

// NewPingTransmitter returns a quiet ping transmitter.
func NewPingTransmitter() *PingTransmitter {
	return &PingTransmitter{Writer: io.Discard}
}

func (t *PingTransmitter) Transmit(ctx context.Context, addr netip.Addr) error {
	cmd := exec.CommandContext(ctx, "ping", "-6", "-c", "1", addr.String())
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if t.Verbose && t.Writer != nil {
		fmt.Fprintln(t.Writer, strings.Join(cmd.Args, " "))
	}

	if err := cmd.Run(); err != nil {
		return &TransmissionError{Addr: addr, Err: err}
	}
	return nil
}
