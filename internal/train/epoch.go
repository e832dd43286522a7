package train

// Epoch is the outcome of a single training epoch.
type Epoch struct {
	Index         int     `json:"index"`
	TrainLoss     float64 `json:"train_loss"`
	TrainAccuracy float64 `json:"train_accuracy"`
	TestLoss      float64 `json:"test_loss"`
	TestAccuracy  float64 `json:"test_accuracy"`
}

func (e Epoch) row() []float64 {
	return []float64{float64(e.Index), e.TrainLoss, e.TrainAccuracy, e.TestLoss, e.TestAccuracy}
}

func fromRow(row []float64) Epoch {
	return Epoch{
		Index:         int(row[0]),
		TrainLoss:     row[1],
		TrainAccuracy: row[2],
		TestLoss:      row[3],
		TestAccuracy:  row[4],
	}
}

// Observer is notified after every epoch of a training run.
type Observer interface {
	Observe(run string, epoch Epoch)
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc func(run string, epoch Epoch)

func (f ObserverFunc) Observe(run string, epoch Epoch) {
	f(run, epoch)
}
