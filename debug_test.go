package partheap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugStringEmptyContainer(t *testing.T) {
	ct := New[int]()
	assert.Equal(t, "", ct.debugString())
}

func TestDebugStringRendersEveryPartitionBlock(t *testing.T) {
	ct := NewFromRange[int]([]int{5, 3, 8, 1, 4, 9, 2}, -1, false)
	out := ct.debugString()

	// One header block per partition, each naming its absolute buffer
	// range and live/capacity count, as produced by bulk-building the 7
	// sorted values [1,2,3,4,5,8,9] into partitions of size 1, 3, 5.
	for _, header := range []string{
		"partition 0 [0..0], 1/1:",
		"partition 1 [1..3], 3/3:",
		"partition 2 [4..8], 3/5:",
	} {
		assert.True(t, strings.Contains(out, header), "missing header %q in:\n%s", header, out)
	}

	// Every live value must appear somewhere in the rendered tree.
	for _, v := range []string{"1", "2", "3", "4", "5", "8", "9"} {
		assert.True(t, strings.Contains(out, v), "missing value %q in:\n%s", v, out)
	}
}

func TestDebugPrintRunEmptyRun(t *testing.T) {
	assert.Equal(t, "", debugPrintRun([]int{}))
}
