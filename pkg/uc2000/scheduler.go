// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package uc2000

import "time"

// Metrics reports interval timing from a scheduler run.
type Metrics struct {
	// Iterations is the number of inside-interval callbacks completed.
	Iterations int
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
	// MeanInterval is Elapsed divided by Iterations.
	MeanInterval time.Duration
}

// Scheduler times the percent toggles of a shot sequence. Configure sets
// the interval and iteration count; Run invokes inside once per interval
// with the 0-based iteration index, then outside once after the final
// interval. A callback error aborts the run and is returned with the
// metrics gathered so far.
type Scheduler interface {
	Configure(intervalMicros int64, iterations int)
	Run(inside func(iteration int) error, outside func() error) (Metrics, error)
}

// IntervalScheduler is a Scheduler built on a time.Ticker. Interval
// accuracy is whatever the host OS timer gives; the shot time is held by
// the tick, the boundary callback runs as soon as the last tick fires.
type IntervalScheduler struct {
	interval   time.Duration
	iterations int
}

// NewIntervalScheduler creates an unconfigured scheduler.
func NewIntervalScheduler() *IntervalScheduler {
	return &IntervalScheduler{}
}

// Configure sets the tick interval in microseconds and the iteration count.
func (s *IntervalScheduler) Configure(intervalMicros int64, iterations int) {
	s.interval = time.Duration(intervalMicros) * time.Microsecond
	s.iterations = iterations
}

// Run executes the configured iterations.
func (s *IntervalScheduler) Run(inside func(int) error, outside func() error) (Metrics, error) {
	start := time.Now()
	if s.iterations <= 0 {
		return Metrics{}, nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; i < s.iterations; i++ {
		if err := inside(i); err != nil {
			return s.metrics(i, time.Since(start)), err
		}
		<-ticker.C
	}

	if outside != nil {
		if err := outside(); err != nil {
			return s.metrics(s.iterations, time.Since(start)), err
		}
	}
	return s.metrics(s.iterations, time.Since(start)), nil
}

func (s *IntervalScheduler) metrics(iterations int, elapsed time.Duration) Metrics {
	m := Metrics{Iterations: iterations, Elapsed: elapsed}
	if iterations > 0 {
		m.MeanInterval = elapsed / time.Duration(iterations)
	}
	return m
}
