package ml

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// State is the training state of a network.
type State int

const (
	// Initialized networks carry only their random initial parameters.
	Initialized State = iota
	// Trained networks have applied at least one batch update.
	Trained
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Trained:
		return "trained"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Shuffler permutes the example order at the start of every epoch.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// layer holds the parameters connecting a layer to the previous one,
// together with the scratch space of the forward and backward pass.
type layer struct {
	w *mat.Dense    // n_l x n_{l-1}
	b *mat.VecDense // n_l

	z *mat.VecDense // pre-activation
	v *mat.VecDense // activation

	delta *mat.VecDense // error of the layer, doubles as the bias gradient
	dw    *mat.Dense    // weight gradient of the current example

	sumW *mat.Dense
	sumB *mat.VecDense
}

func newLayer(out, in int) *layer {
	return &layer{
		w:     mat.NewDense(out, in, nil),
		b:     mat.NewVecDense(out, nil),
		z:     mat.NewVecDense(out, nil),
		v:     mat.NewVecDense(out, nil),
		delta: mat.NewVecDense(out, nil),
		dw:    mat.NewDense(out, in, nil),
		sumW:  mat.NewDense(out, in, nil),
		sumB:  mat.NewVecDense(out, nil),
	}
}

func (l *layer) generate(gen func() float64) {
	w := l.w.RawMatrix().Data
	for i := range w {
		w[i] = gen()
	}
	b := l.b.RawVector().Data
	for i := range b {
		b[i] = gen()
	}
}

// Network is a fully connected feed-forward network with sigmoid activations,
// trained with mini-batch gradient descent on the squared error.
//
// A Network is not safe for concurrent use: Predict, Evaluate and Fit
// share the activation buffers of the instance.
type Network struct {
	sizes  []int
	input  *mat.VecDense
	layers []*layer

	src       rand.Source
	shuffler  Shuffler
	observers []Observer
	scaled    bool

	epochs  int
	updates int
}

// Option configures a network at construction time.
type Option func(n *Network)

// WithSource sets the random source used for initialisation and shuffling.
func WithSource(src rand.Source) Option {
	return func(n *Network) {
		n.src = src
	}
}

// WithSeed is a shorthand for a seeded source.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewSource(seed))
}

// WithShuffler replaces the epoch shuffling.
func WithShuffler(shuffler Shuffler) Option {
	return func(n *Network) {
		n.shuffler = shuffler
	}
}

// WithObserver registers observers for the per-epoch progress of Fit.
func WithObserver(observer ...Observer) Option {
	return func(n *Network) {
		n.observers = append(n.observers, observer...)
	}
}

// WithScaledInit divides the initial weights of every layer by the square root of its fan-in.
func WithScaledInit() Option {
	return func(n *Network) {
		n.scaled = true
	}
}

// New creates a network for the given layer sizes, input layer first.
// Weights and biases are drawn from a standard normal distribution.
func New(sizes []int, options ...Option) (*Network, error) {
	n, err := build(sizes, options...)
	if err != nil {
		return nil, err
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: n.src}
	for _, l := range n.layers {
		l.generate(norm.Rand)
	}
	if n.scaled {
		n.ScaleWeights()
	}
	return n, nil
}

// build allocates a zeroed network.
func build(sizes []int, options ...Option) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("need at least 2 layers but got %v: %w", sizes, InvalidTopologyErr)
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("layer %d has non-positive size %d: %w", i, s, InvalidTopologyErr)
		}
	}

	n := &Network{
		sizes:     append([]int(nil), sizes...),
		input:     mat.NewVecDense(sizes[0], nil),
		layers:    make([]*layer, len(sizes)-1),
		observers: make([]Observer, 0),
	}
	for _, option := range options {
		option(n)
	}
	if n.src == nil {
		n.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if n.shuffler == nil {
		n.shuffler = rand.New(n.src)
	}
	for i := range n.layers {
		n.layers[i] = newLayer(sizes[i+1], sizes[i])
	}
	return n, nil
}

// Sizes returns the layer sizes, input layer first.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Layers returns the number of weight layers, e.g. hidden and output layers.
func (n *Network) Layers() int {
	return len(n.layers)
}

// State returns the training state.
func (n *Network) State() State {
	if n.updates > 0 {
		return Trained
	}
	return Initialized
}

// Epochs returns the number of epochs trained so far.
func (n *Network) Epochs() int {
	return n.epochs
}

// Updates returns the number of batch updates applied so far.
func (n *Network) Updates() int {
	return n.updates
}

// Subscribe registers observers after construction.
func (n *Network) Subscribe(observer ...Observer) {
	n.observers = append(n.observers, observer...)
}

// Params returns copies of the weights and biases of layer l.
// Layer 0 connects the input to the first hidden layer.
func (n *Network) Params(l int) (*mat.Dense, *mat.VecDense, error) {
	if err := n.checkLayer(l); err != nil {
		return nil, nil, err
	}
	return mat.DenseCopyOf(n.layers[l].w), mat.VecDenseCopyOf(n.layers[l].b), nil
}

// SetParams overwrites the weights and biases of layer l.
func (n *Network) SetParams(l int, w mat.Matrix, b mat.Vector) error {
	if err := n.checkLayer(l); err != nil {
		return err
	}
	r, c := w.Dims()
	if r != n.sizes[l+1] || c != n.sizes[l] {
		return fmt.Errorf("weights of layer %d must be %dx%d but got %dx%d: %w",
			l, n.sizes[l+1], n.sizes[l], r, c, DimensionMismatchErr)
	}
	if b.Len() != n.sizes[l+1] {
		return fmt.Errorf("biases of layer %d must have length %d but got %d: %w",
			l, n.sizes[l+1], b.Len(), DimensionMismatchErr)
	}
	n.layers[l].w.Copy(w)
	n.layers[l].b.CopyVec(b)
	return nil
}

// ScaleWeights divides the weights of every layer by the square root of its fan-in.
func (n *Network) ScaleWeights() {
	for i, l := range n.layers {
		l.w.Scale(1/math.Sqrt(float64(n.sizes[i])), l.w)
	}
}

// Clone returns a deep copy of the network parameters and counters.
// The copy gets its own random source, starting from the current state of the
// original one, and its own shuffler. Observers are not copied.
// Options apply as for New, apart from the parameter initialisation.
func (n *Network) Clone(options ...Option) *Network {
	c, _ := build(n.sizes, append([]Option{WithSource(fork(n.src))}, options...)...)
	for i, l := range n.layers {
		c.layers[i].w.Copy(l.w)
		c.layers[i].b.CopyVec(l.b)
	}
	c.epochs = n.epochs
	c.updates = n.updates
	return c
}

// fork returns an independent source.
// PCG sources are copied with their state, any other source seeds a new one from its next value.
func fork(src rand.Source) rand.Source {
	if pcg, ok := src.(*rand.PCGSource); ok {
		c := *pcg
		return &c
	}
	return rand.NewSource(src.Uint64())
}

// Predict runs the forward pass and returns the output layer activations.
func (n *Network) Predict(x []float64) ([]float64, error) {
	if len(x) != n.sizes[0] {
		return nil, fmt.Errorf("input must have length %d but got %d: %w", n.sizes[0], len(x), DimensionMismatchErr)
	}
	v := n.forward(x)
	return append([]float64(nil), v.RawVector().Data...), nil
}

// forward populates the activation buffers for the given input and returns the output layer.
func (n *Network) forward(x []float64) *mat.VecDense {
	copy(n.input.RawVector().Data, x)
	v := n.input
	for _, l := range n.layers {
		l.z.MulVec(l.w, v)
		l.z.AddVec(l.z, l.b)
		apply(l.v, l.z, sigmoid)
		v = l.v
	}
	return v
}

// activation returns the input of layer l as computed by the last forward pass.
func (n *Network) activation(l int) *mat.VecDense {
	if l == 0 {
		return n.input
	}
	return n.layers[l-1].v
}

func (n *Network) checkLayer(l int) error {
	if l < 0 || l >= len(n.layers) {
		return fmt.Errorf("layer %d out of range [0,%d): %w", l, len(n.layers), InvalidArgumentErr)
	}
	return nil
}
