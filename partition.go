package partheap

import "math"

// partitionSize returns the capacity (always odd) of partition p.
func partitionSize(p int) int {
	return 2*p + 1
}

// partitionStart returns the absolute buffer index of partition p's first
// slot.
func partitionStart(p int) int {
	return p * p
}

// partitionEnd returns the absolute buffer index of partition p's last
// slot.
func partitionEnd(p int) int {
	return p*p + 2*p
}

// ceilSqrt returns ⌈√n⌉ for n >= 0.
func ceilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 0 && (r-1)*(r-1) >= n {
		r--
	}
	return r
}

// finalPartitionOf returns the index of the highest-indexed non-empty
// partition for a container holding count elements (0 when count == 0).
func finalPartitionOf(count int) int {
	if count == 0 {
		return 0
	}
	return ceilSqrt(count) - 1
}

// countInPartitionOf returns how many of the container's count live
// elements belong to partition p, given the container's final partition.
// Every partition before final is always full; only final may be partial.
func countInPartitionOf(p, count, final int) int {
	if p < final {
		return partitionSize(p)
	}
	return count - p*p
}

func (c *Container[T]) finalPartition() int {
	return finalPartitionOf(c.count)
}

func (c *Container[T]) countInPartition(p int) int {
	return countInPartitionOf(p, c.count, c.finalPartition())
}

// findPartition binary-searches the partitions for the one whose [min,
// max] range brackets v. When forInsert is true, and no partition
// directly brackets v, it additionally recognizes the three edge cases
// spec.md describes for locating an insertion point: fitting at the low
// edge of a partition right after the one that ends below v, fitting
// below the very first partition, or fitting above the very last
// partition's minimum. The three edge cases are tried in that order,
// first match wins.
func (c *Container[T]) findPartition(v T, forInsert bool) int {
	if c.count == 0 {
		return 0
	}

	final := c.finalPartition()
	lo, hi := 0, final
	for lo <= hi {
		mid := lo + (hi-lo)/2
		base := partitionStart(mid)
		n := c.countInPartition(mid)
		minP := c.buf[base]
		maxP := peekMax(c.buf, base, n, c.cmp)

		if c.cmp(&v, &minP) >= 0 && c.cmp(&v, &maxP) <= 0 {
			return mid
		}

		if forInsert {
			if mid > 0 && c.cmp(&v, &maxP) <= 0 {
				prevN := c.countInPartition(mid - 1)
				prevMax := peekMax(c.buf, partitionStart(mid-1), prevN, c.cmp)
				if c.cmp(&prevMax, &v) <= 0 {
					return mid
				}
			}
			if mid == 0 && c.cmp(&v, &maxP) <= 0 {
				return mid
			}
			if mid == final && c.cmp(&v, &minP) >= 0 {
				return mid
			}
		}

		if c.cmp(&maxP, &v) < 0 {
			lo = mid + 1
			continue
		}
		if mid == 0 {
			break
		}
		hi = mid - 1
	}
	return 0
}
