package partheap

import "errors"

// Sentinel errors reported by Container operations. All of them signal a
// precondition violation at the call that triggered them; none leave the
// container in a partially-mutated state, and none need further context
// beyond "which kind", so these are compared with errors.Is rather than
// wrapped with call-site detail.
var (
	// ErrOutOfRange is returned by Get when the index is >= Size().
	ErrOutOfRange = errors.New("partheap: index out of range")

	// ErrCapacityExceeded is returned by Insert when the container is
	// full and fixed-size (constructed with allowResize = false).
	ErrCapacityExceeded = errors.New("partheap: capacity exceeded")

	// ErrResizeForbidden is returned when a fixed-size container is
	// asked to change its storage capacity.
	ErrResizeForbidden = errors.New("partheap: resize forbidden on fixed-size container")

	// ErrEmpty is returned by Min and Max on an empty container.
	ErrEmpty = errors.New("partheap: container is empty")
)
