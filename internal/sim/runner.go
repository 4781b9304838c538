// Package sim drives a field through epochs: pacing, early stopping,
// per-epoch observation, and metric collection. The core update rule
// itself lives in the life package.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/metrics"
)

// Observer is notified with the current field after every epoch,
// including epoch 0 (the seeded state, before any update).
type Observer interface {
	OnEpoch(f *life.Field, epoch int)
}

type Config struct {
	Epochs         int
	Interval       time.Duration
	StopWhenStable bool
}

type Result struct {
	Epochs      int
	Populations []int
	Metrics     map[string]float64
	Stable      bool
	Elapsed     time.Duration
}

type Runner struct {
	metrics   []metrics.Metric
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

// Run advances f through up to cfg.Epochs update cycles, recording the
// population after every epoch. With StopWhenStable the run ends as soon
// as an epoch leaves the field unchanged. Interval paces epochs for the
// interactive views; headless runs leave it zero.
func (r *Runner) Run(ctx context.Context, f *life.Field, cfg Config) (*Result, error) {
	if cfg.Epochs < 0 {
		return nil, fmt.Errorf("epochs must be non-negative, got %d", cfg.Epochs)
	}

	start := time.Now()
	result := &Result{
		Populations: make([]int, 0, cfg.Epochs+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	r.observe(result, f, 0)

	var prev *life.Field
	if cfg.StopWhenStable {
		prev = f.Clone()
	}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		f.Update()
		result.Epochs = epoch
		r.observe(result, f, epoch)

		if cfg.StopWhenStable {
			if f.Equal(prev) {
				result.Stable = true
				break
			}
			prev = f.Clone()
		}

		if cfg.Interval > 0 && epoch < cfg.Epochs {
			select {
			case <-ctx.Done():
				result.Elapsed = time.Since(start)
				return result, ctx.Err()
			case <-time.After(cfg.Interval):
			}
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Elapsed = time.Since(start)
	return result, nil
}

func (r *Runner) observe(result *Result, f *life.Field, epoch int) {
	result.Populations = append(result.Populations, f.Population())
	for _, m := range r.metrics {
		m.Observe(f, epoch)
	}
	for _, o := range r.observers {
		o.OnEpoch(f, epoch)
	}
}
