package bouncer

// Direction is the sign of a shape's motion along one axis. It is always
// +1 or -1.
type Direction int

const (
	Forward  Direction = 1  // toward increasing coordinates
	Backward Direction = -1 // toward decreasing coordinates
)

// NewDirection normalizes n to a Direction: Forward for n > 0, Backward
// otherwise (zero included).
func NewDirection(n int) Direction {
	if n > 0 {
		return Forward
	}
	return Backward
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// ReflectAndMove computes one axis of a bounce step.
//
// If target is not strictly inside (0, bound-extent) the direction flips.
// The coordinate then moves from old by |old-target| in the resulting
// direction. The step magnitude is never shortened at the edge, so a shape
// may end up past the boundary by up to one step; it reflects back on the
// following update.
func ReflectAndMove(old, target, extent, bound int, dir Direction) (int, Direction) {
	dir = NewDirection(int(dir))
	if !(target > 0 && target < bound-extent) {
		dir = dir.Flip()
	}
	delta := old - target
	if delta < 0 {
		delta = -delta
	}
	return old + delta*int(dir), dir
}
