// Package partheap provides a searchable double-ended priority queue backed
// by a single contiguous buffer, subdivided into a sequence of
// independently min-max-heap-ordered runs ("partitions") whose sizes are
// the consecutive odd numbers 1, 3, 5, …, 2·⌈√N⌉−1.
//
// Each partition supports O(1) access to both its minimum and maximum via
// the min-max heap invariant (levels alternate min-ordered and
// max-ordered, starting with a min-ordered root). Across partitions, the
// container additionally maintains a global ordering: every element of
// partition k is ≤ every element of partition k+1. Only the local
// min-max-heap property holds within a single partition; the buffer as a
// whole is not heap-ordered or sorted.
//
// This gives O(1) Min/Max, O(√N) Find, and O(√N·log N) Insert/Remove
// (insertion may ripple a displaced maximum forward across partitions;
// removal may ripple the final partition's minimum backward to refill a
// vacated slot; each partition on the way is re-heapified), trading
// the O(log N) bounds of a plain heap for cheap dual-ended access and
// cheap membership queries.
//
// If T satisfies golang.org/x/exp/constraints.Ordered, use New,
// NewWithReserve, or NewFromRange, e.g.:
//
//	c := partheap.New[int]()
//	c.Insert(17)
//	c.Insert(4)
//	min, _ := c.Min()
//
// If T can't be compared with <, implement Orderable with a pointer
// receiver and use NewOrderable, NewWithReserveOrderable, or
// NewFromRangeOrderable:
//
//	type Event struct {
//		At  int64
//		Tag string
//	}
//
//	func (a *Event) Cmp(b *Event) int {
//		return int(a.At - b.At)
//	}
//
//	c := partheap.NewOrderable[Event]()
//	c.Insert(Event{At: 10, Tag: "x"})
//
// Container is not safe for concurrent use; callers must provide their own
// exclusive access for Insert/Remove/construction and may share read access
// across Find/Contains/Min/Max/Get/Size provided no writer runs
// concurrently.
package partheap
