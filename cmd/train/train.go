package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"github.com/drakos74/neurons/infra/config"
	"github.com/drakos74/neurons/internal/dataset"
	coinmath "github.com/drakos74/neurons/internal/math"
	"github.com/drakos74/neurons/internal/metrics"
	"github.com/drakos74/neurons/internal/storage"
	"github.com/drakos74/neurons/internal/storage/file/json"
	"github.com/drakos74/neurons/internal/train"
)

const defaultConfig = "train"

// Config is the configuration of a training run.
type Config struct {
	Dataset     dataset.Config `json:"dataset"`
	Train       train.Config   `json:"train"`
	MetricsPort int            `json:"metrics_port"`
	LogEvery    int            `json:"log_every"`
	Storage     string         `json:"storage"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	key := defaultConfig
	if len(os.Args) > 1 {
		key = os.Args[1]
	}

	var cfg Config
	config.MustLoad(key, &cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("config", key).Msg("training failed")
	}
}

// run trains a network for the config and persists it.
// An empty storage dir skips persistence.
func run(ctx context.Context, cfg Config) error {
	trainSet, testSet, err := cfg.Dataset.Generate()
	if err != nil {
		return fmt.Errorf("could not generate '%s' data set: %w", cfg.Dataset.Kind, err)
	}
	log.Info().
		Str("kind", cfg.Dataset.Kind).
		Int("train", trainSet.Len()).
		Int("test", testSet.Len()).
		Msg("generated data set")

	net, err := cfg.Train.Network()
	if err != nil {
		return fmt.Errorf("could not create network %v: %w", cfg.Train.Layers, err)
	}

	observers := []train.Observer{train.LogObserver(cfg.LogEvery)}
	if cfg.MetricsPort > 0 {
		server := metrics.Serve(cfg.MetricsPort)
		defer server.Close()
		observers = append(observers, metrics.Observer)
	}

	report, err := train.New(net, cfg.Train, observers...).Run(ctx, trainSet, testSet)
	if err != nil {
		log.Error().Err(err).Str("run", report.Run).Msg("training interrupted")
	}

	log.Info().
		Str("run", report.Run).
		Int("epochs", report.Epochs).
		Bool("stopped", report.Stopped).
		Str("reason", report.Reason).
		Int("best-epoch", report.Best.Index).
		Str("best-test-loss", coinmath.Format(report.Best.TestLoss)).
		Str("train-loss", coinmath.Format(report.Last.TrainLoss)).
		Str("train-accuracy", coinmath.Format(report.Last.TrainAccuracy)).
		Str("test-loss", coinmath.Format(report.Last.TestLoss)).
		Str("test-accuracy", coinmath.Format(report.Last.TestAccuracy)).
		Str("oscillation", coinmath.Format(report.Oscillation)).
		Dur("duration", report.Duration).
		Msg("training finished")

	p, err := shard(cfg)(report.Run)
	if err != nil {
		return fmt.Errorf("could not create storage: %w", err)
	}
	k := train.Key(net, report.Run)
	if err := train.Save(p, k, net); err != nil {
		return err
	}
	if cfg.Storage == "" {
		log.Info().Str("key", k.Path()).Msg("skipped persistence")
		return nil
	}

	restored, err := train.Load(p, k)
	if err != nil {
		return err
	}
	for i, x := range testSet.X {
		expected, _ := net.Predict(x)
		out, err := restored.Predict(x)
		if err != nil || !floats.Equal(expected, out) {
			return fmt.Errorf("restored network does not reproduce the prediction for example %d: %v", i, err)
		}
	}
	log.Info().Str("key", k.Path()).Str("dir", storage.DefaultDir).Msg("saved network")
	return nil
}

// shard returns the json blob storage under the configured dir, or a void one if there is none.
func shard(cfg Config) storage.Shard {
	if cfg.Storage == "" {
		return storage.VoidShard()
	}
	storage.DefaultDir = cfg.Storage
	return json.BlobShard(storage.ModelDir)
}
