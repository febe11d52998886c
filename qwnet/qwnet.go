// Package qwnet implements the single datagram exchange used by
// QuakeWorld out-of-band queries: send one UDP packet, wait for one reply.
package qwnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrTimeout is returned when no reply arrives within the deadline.
var ErrTimeout = errors.New("qwnet: read timed out")

// Defaults applied when ReadOptions fields are left zero.
const (
	DefaultTimeout    = time.Second
	DefaultBufferSize = 8 * 1024
)

// ReadOptions bounds a single exchange.
type ReadOptions struct {
	Timeout    time.Duration
	BufferSize int
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}

	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}

	return o
}

// SendAndReceive sends message to address and returns the first datagram
// received in reply. The deadline is the earlier of opts.Timeout and the
// context deadline; expiry surfaces as ErrTimeout.
func SendAndReceive(ctx context.Context, address string, message []byte, opts ReadOptions) ([]byte, error) {
	opts = opts.withDefaults()

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "udp", address)
	if err != nil {
		return nil, fmt.Errorf("qwnet: dial %s: %w", address, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(opts.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("qwnet: set deadline: %w", err)
	}

	if _, err := conn.Write(message); err != nil {
		return nil, fmt.Errorf("qwnet: send to %s: %w", address, err)
	}

	buffer := make([]byte, opts.BufferSize)

	n, err := conn.Read(buffer)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, address)
		}

		return nil, fmt.Errorf("qwnet: receive from %s: %w", address, err)
	}

	return buffer[:n], nil
}
