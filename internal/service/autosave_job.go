// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/invoice-entry/internal/logger"
)

const defaultAutosaveInterval = 5 * time.Second

// Autosaver is the part of [FormController] the autosave job needs.
type Autosaver interface {
	Autosave(ctx context.Context) (bool, error)
}

type autosaveJob struct {
	form     Autosaver
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutosaveJob creates a job that calls form.Autosave every interval. If
// interval is zero or negative it defaults to 5 seconds. The job is idle
// until Start is called.
func NewAutosaveJob(form Autosaver, interval time.Duration, log *logger.Logger) AutosaveJob {
	if interval <= 0 {
		interval = defaultAutosaveInterval
	}
	return &autosaveJob{form: form, interval: interval, logger: log}
}

func (j *autosaveJob) Interval() time.Duration {
	return j.interval
}

// Start implements AutosaveJob. It stops any previously running job, then
// launches a background goroutine that autosaves every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *autosaveJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				saved, err := j.form.Autosave(jobCtx)
				if err != nil {
					j.logger.Err(err).Str("func", "*autosaveJob.Start").Msg("autosave failed")
					continue
				}
				if saved {
					j.logger.Debug().Str("func", "*autosaveJob.Start").Msg("draft autosaved")
				}
			}
		}
	}()
}

// Stop implements AutosaveJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *autosaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
