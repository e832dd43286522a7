package buffer

// Buffer defines a simple float buffer that acts like a constant size queue
type Buffer struct {
	size   int
	values []float64
}

// NewBuffer creates a new buffer.
func NewBuffer(size int) *Buffer {
	return &Buffer{
		size:   size,
		values: make([]float64, 0, size),
	}
}

// Push adds an element to the buffer, returning the element it evicted if the buffer was full.
func (b *Buffer) Push(x float64) (float64, bool) {
	b.values = append(b.values, x)
	if len(b.values) > b.size {
		value := b.values[0]
		b.values = b.values[1:]
		return value, true
	}
	return 0, false
}

// Get returns the buffer elements in the order they were added.
func (b *Buffer) Get() []float64 {
	return append(make([]float64, 0, len(b.values)), b.values...)
}

// Full returns true once the buffer holds as many elements as its size.
func (b *Buffer) Full() bool {
	return len(b.values) >= b.size
}

// MultiBuffer defines a simple float slice buffer that acts like a constant size queue
// A size of 0 or less keeps every row.
type MultiBuffer struct {
	size   int
	values [][]float64
}

// NewMultiBuffer creates a new buffer.
func NewMultiBuffer(size int) *MultiBuffer {
	return &MultiBuffer{
		size:   size,
		values: make([][]float64, 0),
	}
}

// Push adds a row to the buffer, returning the row it evicted if the buffer was full.
func (b *MultiBuffer) Push(x ...float64) ([]float64, bool) {
	b.values = append(b.values, append([]float64(nil), x...))
	if b.size > 0 && len(b.values) > b.size {
		value := b.values[0]
		b.values = b.values[1:]
		return value, true
	}
	return nil, false
}

// Get returns the buffer rows in the order they were added.
func (b *MultiBuffer) Get() [][]float64 {
	vv := make([][]float64, len(b.values))
	for i, v := range b.values {
		vv[i] = append([]float64(nil), v...)
	}
	return vv
}

// Column returns the i-th element of every row.
func (b *MultiBuffer) Column(i int) []float64 {
	vv := make([]float64, len(b.values))
	for j, v := range b.values {
		vv[j] = v[i]
	}
	return vv
}

// Len returns the current length of the buffer.
func (b *MultiBuffer) Len() int {
	return len(b.values)
}

// Last returns the last row in the buffer.
func (b *MultiBuffer) Last() []float64 {
	size := len(b.values)
	if size > 0 {
		return append([]float64(nil), b.values[size-1]...)
	}
	return []float64{}
}
