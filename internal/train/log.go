package train

import (
	"github.com/rs/zerolog/log"

	coinmath "github.com/drakos74/neurons/internal/math"
)

// LogObserver logs every n-th epoch.
func LogObserver(every int) Observer {
	if every <= 0 {
		every = 1
	}
	return ObserverFunc(func(run string, epoch Epoch) {
		if epoch.Index%every != 0 {
			return
		}
		log.Info().
			Str("run", run).
			Int("epoch", epoch.Index).
			Str("train-loss", coinmath.Format(epoch.TrainLoss)).
			Str("train-accuracy", coinmath.Format(epoch.TrainAccuracy)).
			Str("test-loss", coinmath.Format(epoch.TestLoss)).
			Str("test-accuracy", coinmath.Format(epoch.TestAccuracy)).
			Msg("epoch")
	})
}
