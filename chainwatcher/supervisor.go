package chainwatcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/goware/superr"
	"github.com/robfig/cron/v3"
)

// ErrScheduler wraps any failure creating, registering, starting, or
// stopping a network's cron job (§4.7).
var ErrScheduler = errors.New("chainwatcher: scheduler error")

type runningWatcher struct {
	watcher *NetworkWatcher
	cron    *cron.Cron
}

// Supervisor holds one running NetworkWatcher per network slug, each driven
// by its own cron.Cron instance, and is the sole place networks are
// started or stopped (§4.7).
type Supervisor struct {
	mu       sync.Mutex
	watchers map[string]*runningWatcher
	log      *slog.Logger
	opts     Options
}

func NewSupervisor(log *slog.Logger, opts ...Options) *Supervisor {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Supervisor{watchers: make(map[string]*runningWatcher), log: log, opts: o}
}

// Start registers a six-field cron job against watcher.Network.CronSchedule
// and begins firing ProcessTick. A firing that arrives while the previous
// tick is still running is skipped, so ticks of one network never overlap.
// Starting an already-running slug is a no-op success.
func (s *Supervisor) Start(watcher *NetworkWatcher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug := watcher.Network.Slug
	if _, ok := s.watchers[slug]; ok {
		return nil
	}

	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(watcher.Network.CronSchedule, func() {
		if err := watcher.ProcessTick(context.Background()); err != nil {
			s.log.Warn(fmt.Sprintf("chainwatcher: tick failed for %s: %v", slug, err))
			s.opts.Alerter.Alert(context.Background(), "chainwatcher: tick failed for %s: %v", slug, err)
		}
	})
	if err != nil {
		return superr.Wrap(ErrScheduler, fmt.Errorf("add job for %s: %w", slug, err))
	}

	c.Start()
	s.watchers[slug] = &runningWatcher{watcher: watcher, cron: c}
	return nil
}

// Stop shuts down slug's cron scheduler, waits for any in-flight tick to
// finish, and removes the entry. Stopping an unknown slug is a no-op
// success.
func (s *Supervisor) Stop(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.watchers[slug]
	if !ok {
		return nil
	}
	<-rw.cron.Stop().Done()
	delete(s.watchers, slug)
	return nil
}

// Running reports whether slug currently has an active watcher.
func (s *Supervisor) Running(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.watchers[slug]
	return ok
}
