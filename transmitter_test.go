package painter

import (
	"bytes"
	"context"
	"net/netip"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestTransmitter_VerboseEcho(t *testing.T) {
	var buf bytes.Buffer
	tx := &PingTransmitter{Verbose: true, Writer: &buf}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	addr := netip.MustParseAddr("2602:f75c:c0:0:a:14:ff00:ff")
	err := tx.Transmit(ctx, addr)

	var txErr *TransmissionError
	if !errors.As(err, &txErr) {
		t.Errorf("a cancelled transmission expected a TransmissionError. Got %v", err)
	}
	if !strings.Contains(buf.String(), "ping -6 -c 1 2602:f75c:c0:0:a:14:ff00:ff") {
		t.Errorf("verbose mode should echo the ping command, got %q", buf.String())
	}
}
