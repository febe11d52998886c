package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakeworld/serverstat"
)

type fakeQuerier struct {
	mu      sync.Mutex
	fail    map[string]bool
	queried map[string]int
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{fail: map[string]bool{}, queried: map[string]int{}}
}

func (q *fakeQuerier) ServerInfo(_ context.Context, address string) (*serverstat.QuakeServer, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.queried[address]++

	if q.fail[address] {
		return nil, errors.New("boom")
	}

	return &serverstat.QuakeServer{Address: serverstat.NewHostport(address, 0)}, nil
}

func (q *fakeQuerier) count(address string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.queried[address]
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return log
}

func TestMonitorInitialPoll(t *testing.T) {
	querier := newFakeQuerier()

	type outcome struct {
		address string
		err     error
	}

	var mu sync.Mutex
	outcomes := map[string]outcome{}

	svc := NewService(testLogger(), Config{
		Addresses: []string{"a:1", "b:2"},
		Interval:  time.Hour, // only the initial poll fires in this test
	}, querier, func(address string, _ *serverstat.QuakeServer, err error) {
		mu.Lock()
		defer mu.Unlock()
		outcomes[address] = outcome{address: address, err: err}
	})

	require.NoError(t, svc.Start(context.Background()))
	require.NoError(t, svc.Stop())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, outcomes, 2)
	assert.NoError(t, outcomes["a:1"].err)
	assert.NoError(t, outcomes["b:2"].err)
	assert.Equal(t, 1, querier.count("a:1"))
}

func TestMonitorCircuitOpensAfterConsecutiveFailures(t *testing.T) {
	querier := newFakeQuerier()
	querier.fail["dead:1"] = true

	var mu sync.Mutex
	var lastErr error

	svc := NewService(testLogger(), Config{
		Addresses: []string{"dead:1"},
		Interval:  10 * time.Millisecond,
	}, querier, func(_ string, _ *serverstat.QuakeServer, err error) {
		mu.Lock()
		defer mu.Unlock()
		lastErr = err
	})

	require.NoError(t, svc.Start(context.Background()))

	// Wait until the breaker has tripped and a poll got skipped.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		tripped := errors.Is(lastErr, gobreaker.ErrOpenState)
		mu.Unlock()

		if tripped {
			break
		}

		time.Sleep(5 * time.Millisecond)
	}

	require.NoError(t, svc.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.ErrorIs(t, lastErr, gobreaker.ErrOpenState)
	// The breaker stopped real queries after three consecutive failures.
	assert.Equal(t, 3, querier.count("dead:1"))
}
