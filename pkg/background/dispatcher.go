package background

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"tracking/pkg/logger"
)

var ErrDispatcherClosed = errors.New("dispatcher closed")

// Dispatcher запускает fire-and-forget работу вне контекста запроса.
// Каждая функция выполняется ровно один раз, паники перехватываются.
// Одновременно выполняется не больше limit функций.
type Dispatcher struct {
	log     workerLogger
	timeout time.Duration
	slots   *semaphore.Weighted
	// без WithContext: ошибка одной задачи не отменяет остальные
	group  errgroup.Group
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(log workerLogger, timeout time.Duration, limit int) *Dispatcher {
	if limit < 1 {
		limit = 1
	}

	return &Dispatcher{
		log:     log,
		timeout: timeout,
		slots:   semaphore.NewWeighted(int64(limit)),
	}
}

// Go ждет свободный слот не дольше ctx, затем отвязывает ctx от отмены родителя
// (значения сохраняются) и выполняет fn с таймаутом.
func (d *Dispatcher) Go(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if d.isClosed() {
		return ErrDispatcherClosed
	}

	if err := d.slots.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire dispatcher slot: %w", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.slots.Release(1)
		return ErrDispatcherClosed
	}

	d.group.Go(func() error {
		defer d.slots.Release(1)
		d.run(ctx, name, fn)
		return nil
	})

	return nil
}

func (d *Dispatcher) run(ctx context.Context, name string, fn func(ctx context.Context) error) {
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("dispatched job panic",
				logger.NewField("job", name),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := fn(runCtx); err != nil {
		d.log.Warn("dispatched job failed",
			logger.NewField("job", name),
			logger.NewField("error", err),
		)
	}
}

func (d *Dispatcher) isClosed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.closed
}

// Shutdown перестает принимать новую работу и ждет завершения текущей.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = d.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
