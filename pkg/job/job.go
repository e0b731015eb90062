package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/samandr77/microservices/billing/pkg/logger"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob registers the job only when isEnabled is set and the interval is positive.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Jobs() []string {
	names := make([]string, 0, len(s.jobs))
	for _, j := range s.jobs {
		names = append(names, j.name)
	}

	return names
}

// Start runs every job once right away and then on its interval until ctx is done.
func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, job job) {
	defer s.wg.Done()

	ctx = logger.WithOperation(ctx, job.name)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		runCtx := logger.WithNewRequestID(ctx)

		slog.DebugContext(runCtx, "job started")

		err := s.withRecover(runCtx, job)
		if err != nil {
			slog.ErrorContext(runCtx, "job failed", slog.String("error", err.Error()))
		} else {
			slog.DebugContext(runCtx, "job done")
		}

		select {
		case <-ctx.Done():
			slog.DebugContext(ctx, "context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

// Stop waits for the running jobs to return. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
