package partheap

import "sort"

// bulkBuild establishes both the global partition invariant and the local
// min-max-heap invariant over buf[:count] in place: a single ascending
// sort satisfies the global ordering across partitions, then each
// partition is independently heapified (partition 0 has a single element
// and is trivially heap-ordered already).
func bulkBuild[T any](buf []T, count int, cmp Comparator[T]) {
	sortAscending(buf[:count], cmp)

	final := finalPartitionOf(count)
	for p := 1; p <= final; p++ {
		base := partitionStart(p)
		n := countInPartitionOf(p, count, final)
		makeHeap(buf, base, n, cmp)
	}
}

func sortAscending[T any](s []T, cmp Comparator[T]) {
	sort.Slice(s, func(i, j int) bool {
		return cmp(&s[i], &s[j]) < 0
	})
}
