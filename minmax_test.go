package partheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b *int) int { return ordered(a, b) }

func TestMakeHeapIsValid(t *testing.T) {
	values := []int{8, 2, 5, 7, 1, 4, 3, 6, 0, 9, 12, 11, 10}
	a := append([]int(nil), values...)
	makeHeap(a, 0, len(a), intCmp)

	assert.True(t, isValidRun(a, 0, len(a), intCmp), "expected valid min-max heap, got %v", a)
	assert.Equal(t, 0, a[0], "min should be at index 0")
	assert.Equal(t, 12, peekMax(a, 0, len(a), intCmp))
}

func TestAddBuildsValidHeapIncrementally(t *testing.T) {
	values := []int{5, -3, 17, 1, 9, 2, 18, 19, 14, 6}
	a := make([]int, len(values))
	for i, v := range values {
		add(a, 0, i, v, intCmp)
		require.True(t, isValidRun(a, 0, i+1, intCmp), "invalid after adding %v, heap=%v", v, a[:i+1])
	}
}

func TestRippleAddWithinCapacity(t *testing.T) {
	a := make([]int, 3)
	overflowed, _ := rippleAdd(a, 0, 0, 3, 5, intCmp)
	assert.False(t, overflowed)
	overflowed, _ = rippleAdd(a, 0, 1, 3, 1, intCmp)
	assert.False(t, overflowed)
	overflowed, _ = rippleAdd(a, 0, 2, 3, 9, intCmp)
	assert.False(t, overflowed)
	assert.True(t, isValidRun(a, 0, 3, intCmp))
	assert.Equal(t, 1, a[0])
}

func TestRippleAddAtCapacityOneEvictsImmediately(t *testing.T) {
	a := make([]int, 1)
	overflowed, _ := rippleAdd(a, 0, 0, 1, 10, intCmp)
	require.False(t, overflowed)
	require.Equal(t, 10, a[0])

	overflowed, evicted := rippleAdd(a, 0, 1, 1, 20, intCmp)
	assert.True(t, overflowed)
	assert.Equal(t, 10, evicted)
	assert.Equal(t, 20, a[0])
}

func TestRippleAddEvictsCurrentMax(t *testing.T) {
	a := []int{1, 9, 5}
	require.True(t, isValidRun(a, 0, 3, intCmp))

	overflowed, evicted := rippleAdd(a, 0, 3, 3, 4, intCmp)
	require.True(t, overflowed)
	assert.Equal(t, 9, evicted, "the pre-call maximum must be evicted")
	assert.True(t, isValidRun(a, 0, 3, intCmp))
	assert.Equal(t, 5, peekMax(a, 0, 3, intCmp))
}

func TestReplaceAtIndexPreservesInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := make([]int, 20)
	for i := range a {
		a[i] = rng.Intn(1000)
	}
	makeHeap(a, 0, len(a), intCmp)

	for i := 0; i < len(a); i++ {
		newVal := rng.Intn(1000)
		old := replaceAtIndex(a, 0, len(a), i, newVal, intCmp)
		_ = old
		require.True(t, isValidRun(a, 0, len(a), intCmp), "invalid after replacing index %d, heap=%v", i, a)
	}
}

func TestReplaceAtIndexReturnsOldValue(t *testing.T) {
	a := []int{1, 9, 5}
	old := replaceAtIndex(a, 0, 3, 1, 2, intCmp)
	assert.Equal(t, 9, old)
	assert.True(t, isValidRun(a, 0, 3, intCmp))
}

func TestRemoveAtIndexLastElement(t *testing.T) {
	a := []int{1, 9, 5}
	old := removeAtIndex(a, 0, 3, 2, intCmp)
	assert.Equal(t, 5, old)
	assert.True(t, isValidRun(a, 0, 2, intCmp))
}

func TestRemoveAtIndexMiddleElement(t *testing.T) {
	a := []int{0, 4, 3, 8, 6, 5, 9}
	makeHeap(a, 0, 7, intCmp)
	require.True(t, isValidRun(a, 0, 7, intCmp))

	removedVal := a[1]
	old := removeAtIndex(a, 0, 7, 1, intCmp)
	assert.Equal(t, removedVal, old)
	assert.True(t, isValidRun(a, 0, 6, intCmp))
}

func TestRemoveMin(t *testing.T) {
	a := []int{0, 4, 3, 8, 6, 5, 9}
	makeHeap(a, 0, 7, intCmp)
	require.True(t, isValidRun(a, 0, 7, intCmp))

	val := removeMin(a, 0, 7, intCmp)
	assert.Equal(t, 0, val)
	assert.True(t, isValidRun(a, 0, 6, intCmp))
	assert.Equal(t, 3, a[0], "new minimum should be the set's second-smallest value")
}

func TestRemoveMax(t *testing.T) {
	a := []int{0, 4, 3, 8, 6, 5, 9}
	makeHeap(a, 0, 7, intCmp)
	require.True(t, isValidRun(a, 0, 7, intCmp))

	val := removeMax(a, 0, 7, intCmp)
	assert.Equal(t, 9, val)
	assert.True(t, isValidRun(a, 0, 6, intCmp))
	assert.Equal(t, 8, peekMax(a, 0, 6, intCmp), "new max should be the set's second-largest value")
}

func TestRemoveMaxSingleton(t *testing.T) {
	a := []int{7}
	val := removeMax(a, 0, 1, intCmp)
	assert.Equal(t, 7, val)
}

func TestPeekMaxIndexSmallRuns(t *testing.T) {
	a := []int{5}
	assert.Equal(t, 0, peekMaxIndex(a, 0, 1, intCmp))

	a = []int{5, 9}
	assert.Equal(t, 1, peekMaxIndex(a, 0, 2, intCmp))

	a = []int{5, 9, 20}
	assert.Equal(t, 2, peekMaxIndex(a, 0, 3, intCmp))

	a = []int{5, 20, 9}
	assert.Equal(t, 1, peekMaxIndex(a, 0, 3, intCmp))
}

func TestMakeHeapOperatesOnSubRange(t *testing.T) {
	// Two runs packed into one buffer: [0,3) and [3,8).
	a := []int{2, 1, 3, 9, 4, 7, 6, 5}
	makeHeap(a, 0, 3, intCmp)
	makeHeap(a, 3, 5, intCmp)

	assert.True(t, isValidRun(a, 0, 3, intCmp))
	assert.True(t, isValidRun(a, 3, 5, intCmp))
}
