package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Func is one run of a periodic job. Its context expires after the job interval.
type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Runner runs registered jobs in the background, once at start and then on
// every interval tick.
type Runner struct {
	jobs   []job
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewRunner() *Runner {
	return &Runner{}
}

// Register adds a job. A non-positive interval disables it.
func (r *Runner) Register(name string, interval time.Duration, fn Func) *Runner {
	if interval <= 0 {
		slog.Info("job disabled", "job", name)
		return r
	}

	r.jobs = append(r.jobs, job{name: name, interval: interval, fn: fn})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(len(r.jobs))

	for _, j := range r.jobs {
		go r.loop(ctx, j)
	}
}

// Stop cancels the running jobs and waits for them to return.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}

	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		started := time.Now()

		err := r.run(ctx, l, j)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done", "took", time.Since(started))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *Runner) run(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.ErrorContext(ctx, "job panic", "error", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("job %s panicked: %v", j.name, rec)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	return j.fn(ctx)
}
