// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package task runs a single cancellable background operation and lets
// callers wait for its outcome.
package task

import (
	"context"
	"sync"
)

// Task is a handle to an operation started with [Run].
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Run starts fn in its own goroutine. The context passed to fn is derived
// from ctx and is cancelled by [Task.Cancel] or once fn returns.
func Run(ctx context.Context, fn func(ctx context.Context) error) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		err := fn(taskCtx)

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}()

	return t
}

// Done is closed when the operation has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel asks the operation to stop. It does not wait; use [Task.Wait].
// Safe to call multiple times and after completion.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until the operation finishes and returns its error, or until
// ctx is done. Abandoning a wait does not cancel the operation.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the operation's error. It is nil while the operation runs.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
