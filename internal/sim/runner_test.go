package sim

import (
	"context"
	"testing"

	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/metrics"
)

type countingObserver struct {
	calls  int
	epochs []int
}

func (o *countingObserver) OnEpoch(f *life.Field, epoch int) {
	o.calls++
	o.epochs = append(o.epochs, epoch)
}

func TestRun_RecordsPopulations(t *testing.T) {
	f, _ := life.New(5, 5)
	f.SetPattern([]string{"XXX"}, 1, 2)

	result, err := NewRunner().Run(context.Background(), f, Config{Epochs: 3})
	if err != nil {
		t.Fatal(err)
	}

	if result.Epochs != 3 {
		t.Errorf("expected 3 epochs, got %d", result.Epochs)
	}
	if len(result.Populations) != 4 {
		t.Fatalf("expected 4 samples (epoch 0 included), got %d", len(result.Populations))
	}
	for i, p := range result.Populations {
		if p != 3 {
			t.Errorf("blinker population should stay 3, epoch %d got %d", i, p)
		}
	}
}

func TestRun_StopWhenStable(t *testing.T) {
	f, _ := life.New(6, 6)
	f.SetPattern([]string{
		"XX",
		"XX",
	}, 2, 2)

	result, err := NewRunner().Run(context.Background(), f, Config{Epochs: 50, StopWhenStable: true})
	if err != nil {
		t.Fatal(err)
	}

	if !result.Stable {
		t.Error("block run should report stable")
	}
	if result.Epochs != 1 {
		t.Errorf("block should stabilize after 1 epoch, got %d", result.Epochs)
	}
}

func TestRun_BlinkerNeverStabilizes(t *testing.T) {
	f, _ := life.New(5, 5)
	f.SetPattern([]string{"XXX"}, 1, 2)

	result, err := NewRunner().Run(context.Background(), f, Config{Epochs: 20, StopWhenStable: true})
	if err != nil {
		t.Fatal(err)
	}

	if result.Stable {
		t.Error("an oscillator is never epoch-to-epoch stable")
	}
	if result.Epochs != 20 {
		t.Errorf("expected the full 20 epochs, got %d", result.Epochs)
	}
}

func TestRun_Metrics(t *testing.T) {
	f, _ := life.New(5, 5)
	f.Set(2, 2, true)

	r := NewRunner()
	for _, m := range metrics.Default() {
		r.AddMetric(m)
	}

	result, err := r.Run(context.Background(), f, Config{Epochs: 1})
	if err != nil {
		t.Fatal(err)
	}

	if result.Metrics["population"] != 0 {
		t.Errorf("lone cell should die, final population %f", result.Metrics["population"])
	}
	if result.Metrics["peak_population"] != 1 {
		t.Errorf("expected peak 1, got %f", result.Metrics["peak_population"])
	}
}

func TestRun_Observer(t *testing.T) {
	f, _ := life.New(4, 4)

	obs := &countingObserver{}
	r := NewRunner()
	r.AddObserver(obs)

	if _, err := r.Run(context.Background(), f, Config{Epochs: 5}); err != nil {
		t.Fatal(err)
	}

	if obs.calls != 6 {
		t.Errorf("observer should see epoch 0 plus 5 epochs, got %d calls", obs.calls)
	}
	if obs.epochs[0] != 0 || obs.epochs[len(obs.epochs)-1] != 5 {
		t.Errorf("unexpected epoch sequence: %v", obs.epochs)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	f, _ := life.New(4, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewRunner().Run(ctx, f, Config{Epochs: 100})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil || len(result.Populations) != 1 {
		t.Error("canceled run should still return the partial result")
	}
}

func TestRun_NegativeEpochs(t *testing.T) {
	f, _ := life.New(4, 4)
	if _, err := NewRunner().Run(context.Background(), f, Config{Epochs: -1}); err == nil {
		t.Error("expected error for negative epochs")
	}
}
