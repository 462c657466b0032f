package partheap

import "math/bits"

// Index arithmetic for the implicit binary tree layout shared by every
// partition: local index i has left child 2i+1 and right child 2i+2.

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

func right(i int) int {
	return 2*i + 2
}

func hasParent(i int) bool {
	return i > 0
}

func grandparent(i int) int {
	return parent(parent(i))
}

func hasGrandparent(i int) bool {
	return i > 2
}

func isChildOf(i, c int) bool {
	return c == left(i) || c == right(i)
}

// minLevel reports whether local index i sits on a min-ordered level of
// the min-max heap, i.e. whether ⌊log2(i+1)⌋ is even. The root (i == 0) is
// always a min level.
func minLevel(i int) bool {
	depth := bits.Len(uint(i+1)) - 1
	return depth%2 == 0
}
