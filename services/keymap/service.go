package keymap

import (
	"context"
	"time"
)

// Service polls a Dispatcher at a fixed interval.
type Service struct {
	d        *Dispatcher
	interval time.Duration
	log      Logger
}

func NewService(d *Dispatcher, interval time.Duration, log Logger) *Service {
	if log == nil {
		log = nopLogger{}
	}
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return &Service{d: d, interval: interval, log: log}
}

// Run ticks the dispatcher until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	s.log.Infof("[keymap] polling every %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.log.Infof("[keymap] stopping")
			return ctx.Err()
		case <-tick.C:
			s.d.Tick()
		}
	}
}

// Start runs the service in its own goroutine.
func (s *Service) Start(ctx context.Context) {
	go func() { _ = s.Run(ctx) }()
}
