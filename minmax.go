package partheap

// Comparator reports the sign of a-b: negative if a < b, positive if
// a > b, zero if equal. It takes pointers so comparing elements never
// copies T, matching the hot path this is called from (every sift/bubble
// step compares at least one pair).
type Comparator[T any] func(a, b *T) int

// The functions in this file all operate on a sub-range of a larger
// buffer: base is the absolute index of local index 0, and n/last are
// expressed in local (partition-relative) terms. None of them allocate on
// the comparison path and none retain a reference to the sub-range as an
// independent value — per spec.md's design notes, a partition is never
// modeled as its own object, only as a (buf, base, n) view passed on each
// call.

func peekMin[T any](a []T, base int) T {
	return a[base]
}

// peekMaxIndex returns the local index of the maximum of the n-element run
// starting at base. Requires n >= 1.
func peekMaxIndex[T any](a []T, base, n int, cmp Comparator[T]) int {
	if n == 1 {
		return 0
	}
	if n == 2 {
		return 1
	}
	if cmp(&a[base+2], &a[base+1]) > 0 {
		return 2
	}
	return 1
}

func peekMax[T any](a []T, base, n int, cmp Comparator[T]) T {
	return a[base+peekMaxIndex(a, base, n, cmp)]
}

// siftDownMin restores the min-max invariant rooted at local index i,
// which must sit on a min level, by repeatedly comparing against i's
// children and grandchildren within [0, last].
func siftDownMin[T any](a []T, base, last, i int, cmp Comparator[T]) {
	for {
		l := left(i)
		if l > last {
			return
		}
		r := right(i)

		var cand [6]int
		n := 0
		cand[n] = l
		n++
		if r <= last {
			cand[n] = r
			n++
		}
		if gl := left(l); gl <= last {
			cand[n] = gl
			n++
		}
		if gr := right(l); gr <= last {
			cand[n] = gr
			n++
		}
		if r <= last {
			if gl := left(r); gl <= last {
				cand[n] = gl
				n++
			}
			if gr := right(r); gr <= last {
				cand[n] = gr
				n++
			}
		}

		m := cand[0]
		for k := 1; k < n; k++ {
			if cmp(&a[base+cand[k]], &a[base+m]) < 0 {
				m = cand[k]
			}
		}

		if isChildOf(i, m) {
			if cmp(&a[base+m], &a[base+i]) < 0 {
				a[base+m], a[base+i] = a[base+i], a[base+m]
			}
			return
		}

		if cmp(&a[base+m], &a[base+i]) < 0 {
			a[base+m], a[base+i] = a[base+i], a[base+m]
			p := parent(m)
			if cmp(&a[base+m], &a[base+p]) > 0 {
				a[base+m], a[base+p] = a[base+p], a[base+m]
			}
			i = m
			continue
		}
		return
	}
}

// siftDownMax mirrors siftDownMin with the comparison direction reversed.
func siftDownMax[T any](a []T, base, last, i int, cmp Comparator[T]) {
	for {
		l := left(i)
		if l > last {
			return
		}
		r := right(i)

		var cand [6]int
		n := 0
		cand[n] = l
		n++
		if r <= last {
			cand[n] = r
			n++
		}
		if gl := left(l); gl <= last {
			cand[n] = gl
			n++
		}
		if gr := right(l); gr <= last {
			cand[n] = gr
			n++
		}
		if r <= last {
			if gl := left(r); gl <= last {
				cand[n] = gl
				n++
			}
			if gr := right(r); gr <= last {
				cand[n] = gr
				n++
			}
		}

		m := cand[0]
		for k := 1; k < n; k++ {
			if cmp(&a[base+cand[k]], &a[base+m]) > 0 {
				m = cand[k]
			}
		}

		if isChildOf(i, m) {
			if cmp(&a[base+m], &a[base+i]) > 0 {
				a[base+m], a[base+i] = a[base+i], a[base+m]
			}
			return
		}

		if cmp(&a[base+m], &a[base+i]) > 0 {
			a[base+m], a[base+i] = a[base+i], a[base+m]
			p := parent(m)
			if cmp(&a[base+m], &a[base+p]) < 0 {
				a[base+m], a[base+p] = a[base+p], a[base+m]
			}
			i = m
			continue
		}
		return
	}
}

func siftDown[T any](a []T, base, last, i int, cmp Comparator[T]) {
	if minLevel(i) {
		siftDownMin(a, base, last, i, cmp)
	} else {
		siftDownMax(a, base, last, i, cmp)
	}
}

func bubbleUpMin[T any](a []T, base, i int, cmp Comparator[T]) bool {
	moved := false
	for hasGrandparent(i) {
		g := grandparent(i)
		if cmp(&a[base+i], &a[base+g]) >= 0 {
			break
		}
		a[base+i], a[base+g] = a[base+g], a[base+i]
		i = g
		moved = true
	}
	return moved
}

func bubbleUpMax[T any](a []T, base, i int, cmp Comparator[T]) bool {
	moved := false
	for hasGrandparent(i) {
		g := grandparent(i)
		if cmp(&a[base+i], &a[base+g]) <= 0 {
			break
		}
		a[base+i], a[base+g] = a[base+g], a[base+i]
		i = g
		moved = true
	}
	return moved
}

// bubbleUp restores the min-max invariant on the path from i to the root
// after a[base+i] has decreased or increased. It reports whether any swap
// was made.
func bubbleUp[T any](a []T, base, i int, cmp Comparator[T]) bool {
	if minLevel(i) {
		if hasParent(i) {
			p := parent(i)
			if cmp(&a[base+i], &a[base+p]) > 0 {
				a[base+i], a[base+p] = a[base+p], a[base+i]
				bubbleUpMax(a, base, p, cmp)
				return true
			}
		}
		return bubbleUpMin(a, base, i, cmp)
	}
	if hasParent(i) {
		p := parent(i)
		if cmp(&a[base+i], &a[base+p]) < 0 {
			a[base+i], a[base+p] = a[base+p], a[base+i]
			bubbleUpMin(a, base, p, cmp)
			return true
		}
	}
	return bubbleUpMax(a, base, i, cmp)
}

// makeHeap establishes the min-max invariant over the n-element run
// starting at base, in O(n).
func makeHeap[T any](a []T, base, n int, cmp Comparator[T]) {
	if n <= 1 {
		return
	}
	for i := parent(n - 1); i >= 0; i-- {
		siftDown(a, base, n-1, i, cmp)
	}
}

// add appends v as the (n+1)th element of the run, requiring the buffer to
// have room at base+n, and restores the invariant by bubbling up.
func add[T any](a []T, base, n int, v T, cmp Comparator[T]) {
	a[base+n] = v
	bubbleUp(a, base, n, cmp)
}

// rippleAdd inserts v into a run already holding n of its capacity live
// elements. If the run isn't full it behaves like add. If it is full, v
// evicts the run's current maximum, which is returned as evicted with
// overflowed set to true so the caller can carry it into the next run.
func rippleAdd[T any](a []T, base, n, capacity int, v T, cmp Comparator[T]) (overflowed bool, evicted T) {
	if n < capacity {
		add(a, base, n, v, cmp)
		return false, evicted
	}

	m := peekMaxIndex(a, base, n, cmp)
	evicted = a[base+m]
	a[base+m] = v

	if capacity > 1 && cmp(&v, &a[base]) < 0 {
		a[base+m], a[base] = a[base], a[base+m]
		m = 0
	}

	siftDown(a, base, capacity-1, m, cmp)
	return true, evicted
}

// fixup restores the invariant at local index i after a[base+i] was
// overwritten in place, given the run now holds n live elements. The new
// value is bubbled up first; whatever value then sits at i (the new one,
// or an ancestor's value that bubbleUp swapped down into i) is sifted
// down, which leaves the run unchanged when that value already bounds i's
// subtree.
func fixup[T any](a []T, base, n, i int, cmp Comparator[T]) {
	bubbleUp(a, base, i, cmp)
	siftDown(a, base, n-1, i, cmp)
}

// replaceAtIndex overwrites the element at local index i with v and
// restores the invariant over the n-element run, returning the value that
// was there before.
func replaceAtIndex[T any](a []T, base, n, i int, v T, cmp Comparator[T]) T {
	old := a[base+i]
	a[base+i] = v
	fixup(a, base, n, i, cmp)
	return old
}

// removeAtIndex deletes the element at local index i from the n-element
// run by moving the run's last element into its place (unless i was
// already the last), restoring the invariant over the resulting
// (n-1)-element run, and returning the removed value. The caller is
// responsible for tracking that the run now holds n-1 elements.
func removeAtIndex[T any](a []T, base, n, i int, cmp Comparator[T]) T {
	old := a[base+i]
	if i == n-1 {
		return old
	}
	last := a[base+n-1]
	a[base+i] = last
	fixup(a, base, n-1, i, cmp)
	return old
}

// removeMin removes and returns the minimum of the n-element run, which
// must hold n >= 1.
func removeMin[T any](a []T, base, n int, cmp Comparator[T]) T {
	val := a[base]
	a[base], a[base+n-1] = a[base+n-1], a[base]
	siftDown(a, base, n-2, 0, cmp)
	return val
}

// removeMax removes and returns the maximum of the n-element run, which
// must hold n >= 1.
func removeMax[T any](a []T, base, n int, cmp Comparator[T]) T {
	if n == 1 {
		return a[base]
	}
	m := peekMaxIndex(a, base, n, cmp)
	return removeAtIndex(a, base, n, m, cmp)
}
