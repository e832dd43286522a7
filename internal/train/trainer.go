package train

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/drakos74/neurons/internal/dataset"
	"github.com/drakos74/neurons/internal/math/ml"
)

// Report summarises a training run.
type Report struct {
	Run         string        `json:"run"`
	Epochs      int           `json:"epochs"`
	Stopped     bool          `json:"stopped"`
	Reason      string        `json:"reason,omitempty"`
	Best        Epoch         `json:"best"`
	Last        Epoch         `json:"last"`
	Oscillation float64       `json:"oscillation"`
	Duration    time.Duration `json:"duration"`
}

// Trainer trains a network one epoch at a time, tracking the learning curve
// on a train and a test set.
type Trainer struct {
	id        string
	net       *ml.Network
	cfg       Config
	curve     *Curve
	stopper   *stopper
	observers []Observer
}

// New creates a new trainer for the network.
// The network is not modified until Run is called.
func New(net *ml.Network, cfg Config, observers ...Observer) *Trainer {
	return &Trainer{
		id:        uuid.New().String(),
		net:       net,
		cfg:       cfg,
		curve:     NewCurve(),
		stopper:   newStopper(cfg),
		observers: observers,
	}
}

// ID returns the unique id of the training run.
func (t *Trainer) ID() string {
	return t.id
}

// Curve returns the learning curve so far.
func (t *Trainer) Curve() *Curve {
	return t.curve
}

// Run trains the network for the configured number of epochs,
// or until the test loss stops improving or the context is cancelled.
func (t *Trainer) Run(ctx context.Context, train, test dataset.Set) (report Report, err error) {
	start := time.Now()
	report.Run = t.id
	if err := t.cfg.Validate(); err != nil {
		return report, err
	}
	if err := train.Validate(); err != nil {
		return report, fmt.Errorf("invalid train set: %w", err)
	}
	if err := test.Validate(); err != nil {
		return report, fmt.Errorf("invalid test set: %w", err)
	}

	defer func() {
		report.Duration = time.Since(start)
		report.Best, _ = t.curve.Best()
		report.Last, _ = t.curve.Last()
		report.Oscillation = t.curve.Oscillation()
	}()

	for e := 0; e < t.cfg.Epochs; e++ {
		select {
		case <-ctx.Done():
			report.Stopped = true
			report.Reason = "cancelled"
			return report, ctx.Err()
		default:
		}

		err = t.net.Fit(train.X, train.Y, 1, t.cfg.BatchSize, t.cfg.LearningRate)
		if err != nil {
			return report, fmt.Errorf("could not train epoch %d: %w", e+1, err)
		}
		trainLoss, trainAccuracy, err := t.net.Evaluate(train.X, train.Y)
		if err != nil {
			return report, fmt.Errorf("could not evaluate epoch %d: %w", e+1, err)
		}
		testLoss, testAccuracy, err := t.net.Evaluate(test.X, test.Y)
		if err != nil {
			return report, fmt.Errorf("could not evaluate epoch %d: %w", e+1, err)
		}
		epoch := Epoch{
			Index:         t.net.Epochs(),
			TrainLoss:     trainLoss,
			TrainAccuracy: trainAccuracy,
			TestLoss:      testLoss,
			TestAccuracy:  testAccuracy,
		}
		t.curve.Push(epoch)
		report.Epochs++
		for _, o := range t.observers {
			o.Observe(t.id, epoch)
		}

		if math.IsNaN(epoch.TrainLoss) || math.IsInf(epoch.TrainLoss, 0) {
			report.Stopped = true
			report.Reason = "non-finite loss"
			return report, fmt.Errorf("loss %v at epoch %d: %w", epoch.TrainLoss, epoch.Index, DivergedErr)
		}

		if reason := t.stopper.check(t.curve); reason != "" {
			report.Stopped = true
			report.Reason = reason
			return report, nil
		}
	}
	return report, nil
}
