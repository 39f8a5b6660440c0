// Package ipool provides the array-pool-backed growable buffer used
// for the transient expectation sets that combinators build up while
// trying a parse. It is internal: callers of the public pidgin API
// never construct a List directly, they get one handed to them.
package ipool

import "sync"

// Provider rents and returns backing arrays for List. The zero value of
// Provider is not usable; use NewProvider.
type Provider[E any] struct {
	pool sync.Pool
}

// NewProvider builds a Provider whose rented slices start at the given
// capacity (rounded up by the runtime's own slice growth once elements
// are appended beyond it).
func NewProvider[E any](initialCap int) *Provider[E] {
	if initialCap <= 0 {
		initialCap = 8
	}
	return &Provider[E]{
		pool: sync.Pool{
			New: func() any {
				s := make([]E, 0, initialCap)
				return &s
			},
		},
	}
}

func (p *Provider[E]) rent() *[]E {
	return p.pool.Get().(*[]E)
}

func (p *Provider[E]) giveBack(s *[]E) {
	*s = (*s)[:0]
	p.pool.Put(s)
}

// List is a growable sequence backed by a rented array. It must be
// released (Release) on every exit path; it is not safe for concurrent
// use. The zero value is not usable; use New.
type List[E any] struct {
	provider *Provider[E]
	buf      *[]E
}

// New rents a backing array from provider and returns a List over it.
func New[E any](provider *Provider[E]) *List[E] {
	return &List[E]{provider: provider, buf: provider.rent()}
}

// Add appends a single element.
func (l *List[E]) Add(e E) {
	*l.buf = append(*l.buf, e)
}

// AddRange appends every element of es, in order.
func (l *List[E]) AddRange(es []E) {
	*l.buf = append(*l.buf, es...)
}

// Clear empties the list without releasing its backing array.
func (l *List[E]) Clear() {
	*l.buf = (*l.buf)[:0]
}

// Len reports the number of elements currently held.
func (l *List[E]) Len() int {
	return len(*l.buf)
}

// AsSlice exposes the current contents. The slice is only valid until
// the next Add/AddRange/Clear/Release call.
func (l *List[E]) AsSlice() []E {
	return *l.buf
}

// Release returns the backing array to the pool. The List must not be
// used afterwards.
func (l *List[E]) Release() {
	if l.buf == nil {
		return
	}
	l.provider.giveBack(l.buf)
	l.buf = nil
}
