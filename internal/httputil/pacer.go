// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer holds successive requests to an API at least Interval apart. The
// first Wait returns immediately. Calling Done when a request finishes
// restarts the interval, so the gap is measured from the end of one request
// to the start of the next. It applies a flat delay only: there is no
// backoff and no retry. A Pacer is not safe for concurrent use.
type Pacer struct {
	Interval time.Duration
	limiter  *rate.Limiter
}

// NewPacer returns a Pacer for interval. A zero or negative interval
// disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{
		Interval: interval,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the next request may be sent or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Done marks the end of a request. The next Wait blocks for a full
// Interval from now, however long the request took.
func (p *Pacer) Done() {
	p.limiter = rate.NewLimiter(p.limiter.Limit(), 1)
	p.limiter.Allow()
}
