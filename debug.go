package partheap

import (
	"fmt"
	"strings"
)

// debugString renders every partition of the container as a small tree,
// one partition per block in partition order, each block headed by the
// partition's buffer range and live/capacity count. It is not test-gated (compiled into the package proper) for
// the same reason the teacher library's own pretty-printer is: it is
// useful from a debugger or a REPL without needing a _test.go build.
func (ct *Container[T]) debugString() string {
	var sb strings.Builder
	final := ct.finalPartition()
	for p := 0; p <= final; p++ {
		if ct.count == 0 {
			break
		}
		base := partitionStart(p)
		n := ct.countInPartition(p)
		fmt.Fprintf(&sb, "partition %d [%d..%d], %d/%d:\n", p, base, base+partitionSize(p)-1, n, partitionSize(p))
		sb.WriteString(debugPrintRun(ct.buf[base : base+n]))
	}
	return sb.String()
}

// debugPrintRun pretty-prints a single heap-ordered run as a tree, one
// level per line, values centered under their parent. Adapted from the
// teacher library's debugPrintHeap, generalized from a whole heap to an
// arbitrary run slice.
func debugPrintRun[T any](a []T) string {
	var sb strings.Builder

	if len(a) == 0 {
		return ""
	}

	bhl := 1
	for bhl < len(a) {
		bhl *= 2
	}

	formatted := make([]string, bhl)
	maxLen := 0
	for i, v := range a {
		formatted[i] = fmt.Sprintf("%v", v)
		if len(formatted[i]) > maxLen {
			maxLen = len(formatted[i])
		}
	}
	maxLen += 2

	offsets := make([]int, bhl)
	var fillOffsets func(i int)
	fillOffsets = func(i int) {
		if i >= bhl {
			return
		}
		li := left(i)
		ri := right(i)
		if ri >= bhl {
			if i*2 >= bhl {
				offsets[i] = maxLen + offsets[i-1]
			} else {
				offsets[i] = maxLen / 2
			}
		} else {
			fillOffsets(li)
			fillOffsets(ri)
			offsets[i] = (offsets[li] + offsets[ri]) / 2
		}
	}
	fillOffsets(0)

	startingOffset := (maxLen - len(formatted[bhl/2])) / 2
	level := 0
	off := 0
	for {
		currentOff := 0
		wspace := func() {
			if currentOff >= startingOffset {
				sb.WriteByte(' ')
			}
			currentOff++
		}

		for i := off; i < off+(1<<level); i++ {
			if i >= bhl {
				return sb.String()
			}
			for currentOff+maxLen/2 < offsets[i] {
				wspace()
			}
			lpad := (maxLen - len(formatted[i])) / 2
			for j := 0; j < lpad; j++ {
				wspace()
			}
			sb.WriteString(formatted[i])
			currentOff += len(formatted[i])
			for j := 0; i+1 < off+(1<<level) && j < maxLen-len(formatted[i])-lpad; j++ {
				wspace()
			}
		}
		sb.WriteByte('\n')

		off += 1 << level
		level++
	}
}
