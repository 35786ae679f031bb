package space

import (
	"fmt"
)

// Validate checks the descriptor invariant of s:
//
//	len(Size()) == len(Periodic()) == Dims(), Dims() >= 1,
//	and Size()[i] > 0 wherever Periodic()[i] is set.
//
// Returns ErrNilSpace, ErrBadDescriptor or ErrPeriodicSize on violation.
// The check is O(D); metric functions run it on entry so a degenerate
// descriptor fails loudly instead of yielding NaN distances.
func Validate(s Space) error {
	if s == nil {
		return ErrNilSpace
	}
	d := s.Dims()
	if d < 1 {
		return fmt.Errorf("%w: dims = %d", ErrBadDescriptor, d)
	}
	size, mask := s.Size(), s.Periodic()
	if len(size) != d || len(mask) != d {
		return fmt.Errorf("%w: dims = %d, len(size) = %d, len(periodic) = %d",
			ErrBadDescriptor, d, len(size), len(mask))
	}
	for i, periodic := range mask {
		if periodic && size[i] <= 0 {
			return fmt.Errorf("%w: dimension %d has size %v", ErrPeriodicSize, i, size[i])
		}
	}

	return nil
}

// SizeOf returns a validated copy of the space's size vector.
// The copy keeps callers from mutating the descriptor through the
// returned slice. Complexity: O(D).
func SizeOf(s Space) ([]float64, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	out := make([]float64, s.Dims())
	copy(out, s.Size())

	return out, nil
}
