package editor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/Faultbox/facetcraft/internal/logger"
)

var (
	// ErrTaskInFlight is returned when a task is started while another is
	// still waiting on the user.
	ErrTaskInFlight = errors.New("another task is in progress")
	// ErrCancelled is returned by a task the user backed out of.
	ErrCancelled = errors.New("cancelled")
)

// Task is a dialog run off the main loop. It may ask questions and do file
// work but must not touch the session; it returns the change to apply
// instead. A nil Update means there is nothing to apply.
type Task func(ctx context.Context, p Prompter) (Update, error)

// TaskRunner runs at most one Task at a time and posts the results to the
// session.
type TaskRunner struct {
	ctx      context.Context
	prompter Prompter
	post     func(Update)
	sem      *semaphore.Weighted
	busy     atomic.Bool
	wg       sync.WaitGroup
	log      *zap.Logger
}

// NewTaskRunner creates a runner. Tasks see ctx and stop asking once it is
// cancelled.
func NewTaskRunner(ctx context.Context, p Prompter, post func(Update)) *TaskRunner {
	return &TaskRunner{
		ctx:      ctx,
		prompter: p,
		post:     post,
		sem:      semaphore.NewWeighted(1),
		log:      logger.Named("tasks"),
	}
}

// Start launches task in the background and returns its id. It fails
// without waiting if a task is already running.
func (r *TaskRunner) Start(name string, task Task) (string, error) {
	if !r.sem.TryAcquire(1) {
		return "", ErrTaskInFlight
	}
	r.busy.Store(true)

	id := uuid.NewString()
	log := r.log.With(zap.String("task", name), zap.String("id", id))
	log.Debug("task started")

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.sem.Release(1)
		defer r.busy.Store(false)

		update, err := task(r.ctx, r.prompter)
		switch {
		case errors.Is(err, ErrCancelled):
			log.Info("task cancelled")
		case err != nil:
			log.Error("task failed", zap.Error(err))
		default:
			log.Debug("task finished")
		}
		if update != nil {
			r.post(update)
		}
	}()

	return id, nil
}

// Busy reports whether a task is running.
func (r *TaskRunner) Busy() bool {
	return r.busy.Load()
}

// Wait blocks until the running task, if any, has finished.
func (r *TaskRunner) Wait() {
	r.wg.Wait()
}
