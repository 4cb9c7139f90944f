package uc2000

import (
	"errors"
	"testing"
	"time"
)

func TestIntervalScheduler_Run(t *testing.T) {
	s := NewIntervalScheduler()
	s.Configure(1000, 3) // 1 ms ticks

	var indices []int
	var boundary int
	start := time.Now()
	metrics, err := s.Run(
		func(i int) error {
			indices = append(indices, i)
			return nil
		},
		func() error {
			boundary++
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(indices) != 3 || indices[0] != 0 || indices[2] != 2 {
		t.Errorf("inside indices = %v, want [0 1 2]", indices)
	}
	if boundary != 1 {
		t.Errorf("boundary callback ran %d times, want 1", boundary)
	}
	if metrics.Iterations != 3 {
		t.Errorf("metrics iterations = %d, want 3", metrics.Iterations)
	}
	if elapsed := time.Since(start); elapsed < 3*time.Millisecond {
		t.Errorf("run finished in %v, expected at least 3 ticks of 1ms", elapsed)
	}
	if metrics.MeanInterval <= 0 {
		t.Errorf("mean interval = %v, want > 0", metrics.MeanInterval)
	}
}

func TestIntervalScheduler_CallbackErrorAborts(t *testing.T) {
	s := NewIntervalScheduler()
	s.Configure(1000, 5)

	boom := errors.New("boom")
	calls := 0
	metrics, err := s.Run(
		func(i int) error {
			calls++
			if i == 1 {
				return boom
			}
			return nil
		},
		func() error {
			t.Error("boundary callback ran after an aborted run")
			return nil
		},
	)
	if !errors.Is(err, boom) {
		t.Errorf("Run err = %v, want boom", err)
	}
	if calls != 2 {
		t.Errorf("inside ran %d times, want 2", calls)
	}
	if metrics.Iterations != 1 {
		t.Errorf("metrics iterations = %d, want 1 completed", metrics.Iterations)
	}
}

func TestIntervalScheduler_NoIterations(t *testing.T) {
	s := NewIntervalScheduler()
	s.Configure(1000, 0)

	metrics, err := s.Run(
		func(int) error {
			t.Error("inside callback ran with zero iterations")
			return nil
		},
		func() error {
			t.Error("boundary callback ran with zero iterations")
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if metrics != (Metrics{}) {
		t.Errorf("metrics = %+v, want zero value", metrics)
	}
}
