// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"
)

// retryDelays are the waits between attempts of a retryable operation.
var retryDelays = []time.Duration{
	50 * time.Millisecond,
	150 * time.Millisecond,
	450 * time.Millisecond,
}

// withRetry runs fn and repeats it while classificator reports the error as
// [Retryable], up to len(retryDelays) extra attempts. A nil classificator
// disables retries.
func withRetry(ctx context.Context, classificator ErrorClassificator, fn func() error) error {
	err := fn()
	if err == nil || classificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if classificator.Classify(err) != Retryable {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}

		if err = fn(); err == nil {
			return nil
		}
	}

	return err
}
