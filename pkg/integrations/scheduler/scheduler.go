package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cryptoquote/pkg/types/scheduler"

	"github.com/pkg/errors"
)

var (
	_ scheduler.Scheduler = (*Scheduler)(nil)

	ErrInvalidSchedulerConfig = errors.New("invalid scheduler config")
	ErrAlreadyStarted         = errors.New("scheduler already started")
)

// Scheduler runs a named job on a fixed interval until its context ends or
// Stop is called.
type Scheduler struct {
	name     string
	interval time.Duration
	ctx      context.Context
	logger   *slog.Logger
	handler  func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Scheduler)

func WithName(name string) Option {
	return func(s *Scheduler) {
		s.name = name
	}
}

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

func WithContext(ctx context.Context) Option {
	return func(s *Scheduler) {
		s.ctx = ctx
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

func WithHandler(h func(ctx context.Context) error) Option {
	return func(s *Scheduler) {
		s.handler = h
	}
}

func (s *Scheduler) IsValid() error {
	switch {
	case s.ctx == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "ctx cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "logger cannot be nil")
	case s.interval <= 0:
		return errors.Wrap(ErrInvalidSchedulerConfig, "interval must be positive")
	case s.handler == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "handler cannot be nil")
	default:
		return nil
	}
}

func New(opts ...Option) (*Scheduler, error) {
	s := &Scheduler{name: "job"}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.IsValid(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	return nil
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.handler(ctx); err != nil {
				s.logger.Error("scheduler handler error", "job", s.name, "interval", s.interval, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Stop halts the ticker and waits for a running handler to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
