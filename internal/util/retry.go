// ABOUTME: Retry helpers for remote API calls
// ABOUTME: Exponential backoff with jitter, shared by the embedding and chat clients
package util

import (
	"math/rand/v2"
	"time"
)

const (
	maxBackoff = 30 * time.Second
	// Shift cap so 1<<attempt cannot overflow.
	maxAttemptShift = 30
)

// Backoff returns the delay before the given retry attempt: base doubled
// per attempt, capped at 30s, with up to ±25% random jitter. Attempt 0 (the
// first try) waits nothing.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > maxAttemptShift {
		attempt = maxAttemptShift
	}

	d := base * time.Duration(1<<uint(attempt))
	if d > maxBackoff || d <= 0 {
		d = maxBackoff
	}

	half := int64(d) / 2
	if half <= 0 {
		return d
	}
	jitter := time.Duration(rand.Int64N(half)) - d/4
	return d + jitter
}
