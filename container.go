package partheap

import (
	"github.com/savsgio/gotils/nocopy"
	c "golang.org/x/exp/constraints"
)

// MinAllocation is the initial storage size grow() allocates for a
// container whose buffer is still nil.
const MinAllocation = 4

// Orderable lets a type that can't be compared with < participate via a
// Cmp method with a pointer receiver, mirroring the teacher library's
// escape hatch: Cmp should return 0 if the two values compare equal, < 0
// if the receiver is smaller, > 0 otherwise.
type Orderable[R any] interface {
	Cmp(*R) int
	*R
}

// Container is the partitioned double-ended priority queue described in
// the package doc. It owns its backing buffer exclusively; the zero value
// is not usable — construct one with New, NewOrderable, or one of their
// NewWithReserve*/NewFromRange* siblings. Container is marked NoCopy
// because a shallow struct copy would alias the owned buffer between two
// Container values, which is never what's wanted for something that owns
// and resizes a slice.
type Container[T any] struct {
	buf   []T
	count int
	fixed bool
	cmp   Comparator[T]
	nocopy.NoCopy
}

func ordered[T c.Ordered](a, b *T) int {
	if *a < *b {
		return -1
	}
	if *a > *b {
		return 1
	}
	return 0
}

func orderableCompare[T any, PT Orderable[T]](a, b *T) int {
	return PT(a).Cmp(b)
}

// New constructs an empty, growable container for an ordered T.
func New[T c.Ordered]() *Container[T] {
	return &Container[T]{cmp: ordered[T]}
}

// NewOrderable constructs an empty, growable container for a T whose *T
// implements Orderable[T].
func NewOrderable[T any, PT Orderable[T]]() *Container[T] {
	return &Container[T]{cmp: orderableCompare[T, PT]}
}

// NewWithReserve constructs an empty container with storage for exactly n
// elements, with no rounding to a perfect square (see DESIGN.md for why:
// the storage-squareness invariant only has to hold from the first grow()
// onward). If allowResize is false the container can never grow beyond n.
func NewWithReserve[T c.Ordered](n int, allowResize bool) *Container[T] {
	return newWithReserve[T](n, allowResize, ordered[T])
}

// NewWithReserveOrderable is NewWithReserve for a T using Orderable.
func NewWithReserveOrderable[T any, PT Orderable[T]](n int, allowResize bool) *Container[T] {
	return newWithReserve[T](n, allowResize, orderableCompare[T, PT])
}

func newWithReserve[T any](n int, allowResize bool, cmp Comparator[T]) *Container[T] {
	buf := make([]T, n)
	return &Container[T]{buf: buf, cmp: cmp, fixed: !allowResize}
}

// NewFromRange constructs a container from the elements of src, bulk-built
// in O(n log n). physicalEnd, if >= 0, reserves that many buffer slots
// instead of exactly len(src) (pass -1 to size storage to len(src)). If
// allowResize is true, storage is additionally rounded up to the next
// perfect square and the container remains growable; otherwise the
// container is fixed at the size provided.
func NewFromRange[T c.Ordered](src []T, physicalEnd int, allowResize bool) *Container[T] {
	return newFromRange[T](src, physicalEnd, allowResize, ordered[T])
}

// NewFromRangeOrderable is NewFromRange for a T using Orderable.
func NewFromRangeOrderable[T any, PT Orderable[T]](src []T, physicalEnd int, allowResize bool) *Container[T] {
	return newFromRange[T](src, physicalEnd, allowResize, orderableCompare[T, PT])
}

func newFromRange[T any](src []T, physicalEnd int, allowResize bool, cmp Comparator[T]) *Container[T] {
	target := physicalEnd
	if target < 0 {
		target = len(src)
	}

	ct := &Container[T]{cmp: cmp}
	ct.allocate(target, allowResize)
	copy(ct.buf, src)
	ct.count = len(src)
	ct.fixed = !allowResize

	bulkBuild(ct.buf, ct.count, ct.cmp)
	return ct
}

// allocate replaces the buffer with one of size n (rounded up to the next
// perfect square when roundUp is true), copying over any live elements
// that still fit, bypassing the fixed-size check. Used internally by both
// resize (which enforces fixed) and the range constructors (where fixed
// isn't meaningful yet).
func (ct *Container[T]) allocate(n int, roundUp bool) {
	if n == 0 {
		ct.buf = nil
		ct.count = 0
		return
	}

	size := n
	if roundUp {
		k := ceilSqrt(n)
		size = k * k
	}

	buf := make([]T, size)
	keep := ct.count
	if keep > size {
		keep = size
	}
	copy(buf, ct.buf[:keep])
	ct.buf = buf
}

func (ct *Container[T]) resize(n int, roundUp bool) error {
	if ct.fixed {
		return ErrResizeForbidden
	}
	ct.allocate(n, roundUp)
	return nil
}

func (ct *Container[T]) grow() error {
	newSize := 2 * len(ct.buf)
	if newSize == 0 {
		newSize = MinAllocation
	}
	return ct.resize(newSize, true)
}

// Insert adds v to the container, growing the backing buffer first if it
// is full and resizable. It returns ErrCapacityExceeded if the container
// is full and fixed-size.
func (ct *Container[T]) Insert(v T) error {
	if ct.count == len(ct.buf) {
		if ct.fixed {
			return ErrCapacityExceeded
		}
		if err := ct.grow(); err != nil {
			return err
		}
	}

	p := ct.findPartition(v, true)
	cur := v
	for {
		base := partitionStart(p)
		size := partitionSize(p)
		n := ct.countInPartition(p)

		if n == size {
			// A value above everything in a full partition is itself the
			// value to carry forward; rippleAdd would keep it here and
			// carry the smaller old maximum instead.
			if maxV := peekMax(ct.buf, base, n, ct.cmp); ct.cmp(&cur, &maxV) > 0 {
				p++
				continue
			}
		}

		overflowed, evicted := rippleAdd(ct.buf, base, n, size, cur, ct.cmp)
		if !overflowed {
			break
		}
		cur = evicted
		p++
	}

	ct.count++
	return nil
}

// locate returns the partition and partition-local index of v, if present.
func (ct *Container[T]) locate(v T) (p, local int, found bool) {
	if ct.count == 0 {
		return 0, 0, false
	}
	p = ct.findPartition(v, false)
	base := partitionStart(p)
	n := ct.countInPartition(p)
	for i := 0; i < n; i++ {
		if ct.cmp(&ct.buf[base+i], &v) == 0 {
			return p, i, true
		}
	}
	return 0, 0, false
}

// Find returns the absolute buffer index of an element equal to v, and
// whether one was found.
func (ct *Container[T]) Find(v T) (int, bool) {
	p, local, found := ct.locate(v)
	if !found {
		return 0, false
	}
	return partitionStart(p) + local, true
}

// Contains reports whether v is present in the container.
func (ct *Container[T]) Contains(v T) bool {
	_, _, found := ct.locate(v)
	return found
}

// Remove deletes one element equal to v, if one is present, and reports
// whether it removed anything. If v appears more than once, which
// occurrence is removed is unspecified.
func (ct *Container[T]) Remove(v T) bool {
	p, local, found := ct.locate(v)
	if !found {
		return false
	}

	final := ct.finalPartition()
	if p == final {
		removeAtIndex(ct.buf, partitionStart(p), ct.countInPartition(p), local, ct.cmp)
		ct.count--
		return true
	}

	finalBase := partitionStart(final)
	carry := removeMin(ct.buf, finalBase, ct.countInPartition(final), ct.cmp)
	for q := final - 1; q > p; q-- {
		carry = replaceAtIndex(ct.buf, partitionStart(q), ct.countInPartition(q), 0, carry, ct.cmp)
	}
	replaceAtIndex(ct.buf, partitionStart(p), ct.countInPartition(p), local, carry, ct.cmp)

	ct.count--
	return true
}

// Min returns the container's minimum element. Requires Size() > 0.
func (ct *Container[T]) Min() (T, error) {
	var zero T
	if ct.count == 0 {
		return zero, ErrEmpty
	}
	return peekMin(ct.buf, 0), nil
}

// Max returns the container's maximum element. Requires Size() > 0.
func (ct *Container[T]) Max() (T, error) {
	var zero T
	if ct.count == 0 {
		return zero, ErrEmpty
	}
	final := ct.finalPartition()
	return peekMax(ct.buf, partitionStart(final), ct.countInPartition(final), ct.cmp), nil
}

// Get returns the element at absolute buffer index i. This is a read-only
// view of raw storage, not an ordering-aware accessor: the elements
// backing indices [0, Size()) are a permutation of the container's
// contents, not a sorted sequence.
func (ct *Container[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= ct.count {
		return zero, ErrOutOfRange
	}
	return ct.buf[i], nil
}

// Size returns the number of live elements.
func (ct *Container[T]) Size() int {
	return ct.count
}

// Storage returns the capacity of the backing buffer. It is always a
// perfect square once the container has grown at least once; see
// DESIGN.md for the freshly-reserved exception.
func (ct *Container[T]) Storage() int {
	return len(ct.buf)
}

// Clone returns a deep copy of the container: a fresh buffer of the same
// capacity holding a copy of the same elements. Because partition
// membership and heap order are properties of the buffer's contents
// rather than separately tracked state, copying the buffer is sufficient
// — nothing needs to be recomputed.
func (ct *Container[T]) Clone() *Container[T] {
	buf := make([]T, len(ct.buf))
	copy(buf, ct.buf)
	return &Container[T]{buf: buf, count: ct.count, fixed: ct.fixed, cmp: ct.cmp}
}

// MoveFrom transfers ownership of src's buffer to ct, leaving src empty
// (as if newly constructed with New). ct's previous buffer, if any, is
// discarded.
func (ct *Container[T]) MoveFrom(src *Container[T]) {
	ct.buf = src.buf
	ct.count = src.count
	ct.fixed = src.fixed
	ct.cmp = src.cmp

	src.buf = nil
	src.count = 0
	src.fixed = false
}

// Release deterministically frees the backing buffer, leaving the
// container empty and growable. Further use is valid (it behaves like a
// freshly-constructed empty container with the same comparator) but
// Release exists for callers that want to drop a large buffer's memory
// without waiting on the garbage collector to observe it's unreachable.
func (ct *Container[T]) Release() {
	ct.buf = nil
	ct.count = 0
	ct.fixed = false
}
