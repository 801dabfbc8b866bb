package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// job is one registered maintenance task. Tasks that must only act at a
// certain wall-clock time (the midnight backfill and archive jobs) gate
// themselves inside run; the interval only bounds how often they are
// given the chance.
type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler drives the maintenance jobs from inside the API process,
// one goroutine per job. There is no external cron dependency; the
// process lifetime is the schedule's lifetime.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a named job to run every interval once Start is
// called. Registration after Start has no effect.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	slog.Info("Maintenance job registered", "job", name, "interval", interval)
}

// Start launches every registered job. Each job runs once immediately,
// so a process restarted just after midnight still gets its midnight
// pass, then repeats on its interval until Stop.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}

	slog.Info("Maintenance scheduler started", "job_count", len(s.jobs))
}

// Stop cancels the shared job context and waits for in-flight runs to
// finish before returning.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Maintenance scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.execute(s.ctx, j)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(s.ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	started := time.Now()

	if err := j.run(ctx); err != nil {
		slog.Error("Maintenance job failed", "job", j.name, "error", err, "duration", time.Since(started))
		return
	}
	slog.Debug("Maintenance job finished", "job", j.name, "duration", time.Since(started))
}

// RunOnce executes every registered job a single time with the caller's
// context, bypassing the tickers. Used by tests and one-off maintenance.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.execute(ctx, j)
	}
}
