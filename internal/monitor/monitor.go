// Package monitor runs the periodic polling loop behind watch mode.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/quakeworld/serverstat"
)

// Querier fetches one server snapshot; satisfied by *serverstat.Client.
type Querier interface {
	ServerInfo(ctx context.Context, address string) (*serverstat.QuakeServer, error)
}

// UpdateFunc receives the outcome of each poll. A skipped poll (circuit
// open) reports gobreaker.ErrOpenState.
type UpdateFunc func(address string, server *serverstat.QuakeServer, err error)

// Config holds monitor configuration.
type Config struct {
	Addresses []string
	Interval  time.Duration
}

// Service defines the monitor service interface.
type Service interface {
	Start(ctx context.Context) error
	Stop() error
}

type service struct {
	log      logrus.FieldLogger
	cfg      Config
	querier  Querier
	update   UpdateFunc
	breakers map[string]*gobreaker.CircuitBreaker[*serverstat.QuakeServer]
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewService creates a monitor that polls every configured address on the
// interval. Each address gets its own circuit breaker so a dead server
// stops being queried every tick while the others continue.
func NewService(log logrus.FieldLogger, cfg Config, querier Querier, update UpdateFunc) Service {
	breakers := make(map[string]*gobreaker.CircuitBreaker[*serverstat.QuakeServer], len(cfg.Addresses))

	for _, address := range cfg.Addresses {
		breakers[address] = gobreaker.NewCircuitBreaker[*serverstat.QuakeServer](gobreaker.Settings{
			Name:    address,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})
	}

	return &service{
		log:      log.WithField("component", "monitor"),
		cfg:      cfg,
		querier:  querier,
		update:   update,
		breakers: breakers,
		done:     make(chan struct{}),
	}
}

// Start performs an initial poll and begins the periodic loop.
func (s *service) Start(ctx context.Context) error {
	s.poll(ctx)

	s.wg.Add(1)

	go s.loop(ctx)

	s.log.WithFields(logrus.Fields{
		"servers":  len(s.cfg.Addresses),
		"interval": s.cfg.Interval,
	}).Info("Monitor started")

	return nil
}

// Stop halts the polling loop.
func (s *service) Stop() error {
	close(s.done)
	s.wg.Wait()

	s.log.Info("Monitor stopped")

	return nil
}

// loop runs the periodic poll loop.
func (s *service) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

// poll queries every address concurrently and reports each outcome.
func (s *service) poll(ctx context.Context) {
	var wg sync.WaitGroup

	for _, address := range s.cfg.Addresses {
		wg.Add(1)

		go func(address string) {
			defer wg.Done()

			server, err := s.breakers[address].Execute(func() (*serverstat.QuakeServer, error) {
				return s.querier.ServerInfo(ctx, address)
			})

			if errors.Is(err, gobreaker.ErrOpenState) {
				s.log.WithField("address", address).Debug("Skipping poll, circuit open")
			}

			s.update(address, server, err)
		}(address)
	}

	wg.Wait()
}
