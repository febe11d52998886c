// Package serverstat queries QuakeWorld game servers, QTV broadcast
// relays and QWFWD proxies over their out-of-band UDP protocol and
// decodes the replies into typed snapshots.
package serverstat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quakeworld/serverstat/qwnet"
)

// DefaultTimeout bounds a single query when Options leaves it unset.
const DefaultTimeout = time.Second

// Reply buffer sizes per query kind. A full status reply can carry a
// serverinfo line plus dozens of client records; qtvusers is one line.
const (
	statusBufferSize   = 64 * 1024
	qtvusersBufferSize = 4 * 1024
)

// Options configures a Client.
type Options struct {
	Timeout time.Duration
}

// Client performs one-shot status queries. It holds no connection state
// and is safe for concurrent use across addresses.
type Client struct {
	log     logrus.FieldLogger
	timeout time.Duration
}

// NewClient creates a query client.
func NewClient(log logrus.FieldLogger, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		log:     log.WithField("component", "serverstat"),
		timeout: timeout,
	}
}

// ServerInfo performs the status query against one address and returns
// the decoded snapshot. When the server announces a QTV stream, a second
// qtvusers query fills in the viewer names; that enrichment and the IP
// resolution are best effort and never fail the snapshot.
func (c *Client) ServerInfo(ctx context.Context, address string) (*QuakeServer, error) {
	response, err := qwnet.SendAndReceive(ctx, address, StatusQuery, qwnet.ReadOptions{
		Timeout:    c.timeout,
		BufferSize: statusBufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("status query %s: %w", address, err)
	}

	status, err := ParseStatusResponse(response)
	if err != nil {
		return nil, fmt.Errorf("status response from %s: %w", address, err)
	}

	if status.QtvStream != nil {
		c.enrichQtvStream(ctx, address, status.QtvStream)
	}

	server, err := NewQuakeServer(address, status)
	if err != nil {
		return nil, err
	}

	server.IP = resolveIPv4(ctx, address)

	c.log.WithFields(logrus.Fields{
		"address": server.Address.String(),
		"clients": len(server.Clients),
	}).Debug("Decoded server snapshot")

	return server, nil
}

// enrichQtvStream fills in viewer names via the qtvusers query. Failures
// leave the list empty; they never invalidate the snapshot.
func (c *Client) enrichQtvStream(ctx context.Context, address string, stream *QtvStream) {
	response, err := qwnet.SendAndReceive(ctx, address, QtvusersQuery, qwnet.ReadOptions{
		Timeout:    c.timeout,
		BufferSize: qtvusersBufferSize,
	})
	if err != nil {
		c.log.WithError(err).WithField("address", address).Debug("qtvusers query failed")
		return
	}

	users, err := ParseQtvusersResponse(response)
	if err != nil {
		c.log.WithError(err).WithField("address", address).Debug("qtvusers response undecodable")
		return
	}

	stream.ClientNames = users.ClientNames
}

// Result pairs an address with its query outcome.
type Result struct {
	Address string
	Server  *QuakeServer
	Err     error
}

// ServerInfoMany queries every address concurrently and returns the
// results in input order. Individual failures land in their Result, they
// do not affect the other queries.
func (c *Client) ServerInfoMany(ctx context.Context, addresses []string) []Result {
	results := make([]Result, len(addresses))

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)

		go func(i int, address string) {
			defer wg.Done()

			server, err := c.ServerInfo(ctx, address)
			results[i] = Result{Address: address, Server: server, Err: err}
		}(i, address)
	}
	wg.Wait()

	return results
}
