package sortedarray

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-sorted/optional"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource() *Sequence[int] {
	return New([]int{2, 3, 4, 7, 9})
}

func TestForEach(t *testing.T) {
	t.Parallel()

	t.Run("visits every element in order", func(t *testing.T) {
		t.Parallel()

		var visited []int

		newSource().ForEach(func(v int) {
			visited = append(visited, v)
		})

		assert.Equal(t, []int{2, 3, 4, 7, 9}, visited)
	})

	t.Run("returns the backing storage unchanged", func(t *testing.T) {
		t.Parallel()

		seq := newSource()
		result := seq.ForEach(func(int) {})

		assert.Equal(t, []int{2, 3, 4, 7, 9}, result)
		assert.Same(t, &seq.elements[0], &result[0])
	})

	t.Run("empty sequence visits nothing", func(t *testing.T) {
		t.Parallel()

		calls := 0
		New[int](nil).ForEach(func(int) { calls++ })
		assert.Zero(t, calls)
	})
}

func TestForEachIndexed(t *testing.T) {
	t.Parallel()

	type pair struct {
		value, index int
	}

	var visited []pair

	result := newSource().ForEachIndexed(func(v int, idx int) {
		visited = append(visited, pair{v, idx})
	})

	assert.Equal(t, []pair{{2, 0}, {3, 1}, {4, 2}, {7, 3}, {9, 4}}, visited)
	assert.Equal(t, []int{2, 3, 4, 7, 9}, result)
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	t.Run("returns the transformed values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int{4, 6, 8, 14, 18}, Map(newSource(), double))
	})

	t.Run("does not change the sequence", func(t *testing.T) {
		t.Parallel()

		seq := newSource()
		backing := seq.elements
		mapped := Map(seq, double)

		assert.Equal(t, []int{2, 3, 4, 7, 9}, seq.Entries())
		assert.Equal(t, []int{2, 3, 4, 7, 9}, backing)
		assert.NotSame(t, &backing[0], &mapped[0])
	})

	t.Run("visits every element in order", func(t *testing.T) {
		t.Parallel()

		var visited []int

		Map(newSource(), func(v int) int {
			visited = append(visited, v)

			return v
		})

		assert.Equal(t, []int{2, 3, 4, 7, 9}, visited)
	})

	t.Run("may change the element type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"2", "3", "4", "7", "9"}, Map(newSource(), strconv.Itoa))
	})

	t.Run("result is not re-sorted", func(t *testing.T) {
		t.Parallel()

		negate := func(v int) int { return -v }
		assert.Equal(t, []int{-2, -3, -4, -7, -9}, Map(newSource(), negate))
	})
}

func TestMapInPlace(t *testing.T) {
	t.Parallel()

	t.Run("replaces each element", func(t *testing.T) {
		t.Parallel()

		seq := newSource()
		result := seq.MapInPlace(func(v int) int { return v * 2 })

		assert.Equal(t, []int{4, 6, 8, 14, 18}, result)
		assert.Equal(t, []int{4, 6, 8, 14, 18}, seq.Entries())
	})

	t.Run("returns the same backing storage", func(t *testing.T) {
		t.Parallel()

		seq := newSource()
		before := seq.elements
		after := seq.MapInPlace(func(v int) int { return v })

		require.Len(t, after, len(before))
		assert.Same(t, &before[0], &after[0])
	})

	t.Run("visits every element in order", func(t *testing.T) {
		t.Parallel()

		var visited []int

		newSource().MapInPlace(func(v int) int {
			visited = append(visited, v)

			return v
		})

		assert.Equal(t, []int{2, 3, 4, 7, 9}, visited)
	})

	t.Run("does not re-sort and logs the broken ordering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		seq := New([]int{2, 3, 4, 7, 9}, WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
		result := seq.MapInPlace(func(v int) int { return -v })

		assert.Equal(t, []int{-2, -3, -4, -7, -9}, result)
		assert.False(t, seq.IsSorted())
		require.ErrorIs(t, seq.Validate(), ErrOutOfOrder)

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), "out of order")
		assert.Contains(t, buf.String(), `"index":1`)
		assert.Contains(t, buf.String(), `"previous":-2`)
		assert.Contains(t, buf.String(), `"current":-3`)
	})

	t.Run("order preserving transform logs nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		seq := New([]int{2, 3, 4}, WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
		seq.MapInPlace(func(v int) int { return v + 1 })

		assert.Empty(t, buf.String())
		assert.NoError(t, seq.Validate())
	})

	t.Run("logs through a test logger", func(t *testing.T) {
		t.Parallel()

		seq := New([]string{"a", "b"}, WithLogger(slogt.New(t)))

		require.NotPanics(t, func() {
			seq.MapInPlace(func(s string) string {
				if s == "a" {
					return "z"
				}

				return s
			})
		})
		assert.Equal(t, []string{"z", "b"}, seq.Entries())
	})
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("returns the first match", func(t *testing.T) {
		t.Parallel()

		found := newSource().Find(func(v int) bool { return v%7 == 0 })
		assert.Equal(t, optional.Some(7), found)
	})

	t.Run("returns None when nothing matches", func(t *testing.T) {
		t.Parallel()

		found := newSource().Find(func(v int) bool { return v%10 == 0 })
		assert.True(t, found.Empty())
	})

	t.Run("returns the smallest of several matches", func(t *testing.T) {
		t.Parallel()

		found := newSource().Find(func(v int) bool { return v > 3 })
		assert.Equal(t, 4, found.GetOrPanic())
	})

	t.Run("stops at the first match", func(t *testing.T) {
		t.Parallel()

		var checked []int

		newSource().Find(func(v int) bool {
			checked = append(checked, v)

			return v%7 == 0
		})

		assert.Equal(t, []int{2, 3, 4, 7}, checked)
	})
}

func TestReduce(t *testing.T) {
	t.Parallel()

	sum := func(acc, v int) int { return acc + v }

	t.Run("without a seed starts from the first element", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, optional.Some(25), newSource().Reduce(optional.None[int](), sum))
	})

	t.Run("with a seed folds every element", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, optional.Some(30), newSource().Reduce(optional.Some(5), sum))
	})

	t.Run("empty sequence without a seed is None", func(t *testing.T) {
		t.Parallel()

		assert.True(t, New[int](nil).Reduce(optional.None[int](), sum).Empty())
	})

	t.Run("empty sequence with a seed returns the seed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, optional.Some(5), New[int](nil).Reduce(optional.Some(5), sum))
	})

	t.Run("single element without a seed never calls combine", func(t *testing.T) {
		t.Parallel()

		calls := 0
		result := New([]int{42}).Reduce(optional.None[int](), func(acc, v int) int {
			calls++

			return acc + v
		})

		assert.Equal(t, optional.Some(42), result)
		assert.Zero(t, calls)
	})

	t.Run("folds left to right", func(t *testing.T) {
		t.Parallel()

		concat := func(acc, v string) string { return acc + v }
		seq := New([]string{"c", "a", "b"})

		assert.Equal(t, "abc", seq.Reduce(optional.None[string](), concat).GetOrPanic())
		assert.Equal(t, ">abc", seq.Reduce(optional.Some(">"), concat).GetOrPanic())
	})
}

func TestFold(t *testing.T) {
	t.Parallel()

	t.Run("accumulates into another type", func(t *testing.T) {
		t.Parallel()

		joined := Fold(newSource(), "", func(acc string, v int) string {
			return acc + strconv.Itoa(v)
		})

		assert.Equal(t, "23479", joined)
	})

	t.Run("empty sequence returns the seed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 5, Fold(New[int](nil), 5, func(acc, v int) int { return acc + v }))
	})
}
