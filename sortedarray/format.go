package sortedarray

import (
	"fmt"
	"log/slog"
	"slices"
)

var _ slog.LogValuer = (*Sequence[int])(nil)

// String returns the elements in order, e.g. "SortedArray[2 3 4 7 9]".
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("SortedArray%v", s.elements)
}

// LogValue implements slog.LogValuer, logging the sequence as a group with its
// size and a copy of its elements.
func (s *Sequence[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", len(s.elements)),
		slog.Any("elements", slices.Clone(s.elements)),
	)
}
