package ml

// Observer receives the progress of Fit once per epoch.
// The epoch index counts all the epochs the network has been trained for, starting at 1.
type Observer interface {
	Observe(epoch int, loss, accuracy float64)
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc func(epoch int, loss, accuracy float64)

// Observe calls f.
func (f ObserverFunc) Observe(epoch int, loss, accuracy float64) {
	f(epoch, loss, accuracy)
}

func (n *Network) notify(epoch int, loss, accuracy float64) {
	for _, o := range n.observers {
		o.Observe(epoch, loss, accuracy)
	}
}
