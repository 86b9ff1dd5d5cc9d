package veccell

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryIter(t *testing.T) {
	t.Run("yields elements in order", func(t *testing.T) {
		v := FromSlice([]int{1, 2, 3})
		seq, err := v.TryIter()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	})

	t.Run("empty container", func(t *testing.T) {
		v := New[int]()
		seq, err := v.TryIter()
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq))
	})

	t.Run("shared borrows do not block", func(t *testing.T) {
		v := FromSlice([]int{1, 2})
		a, err := v.Get(0)
		require.NoError(t, err)
		defer a.Release()

		seq, err := v.TryIter()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, slices.Collect(seq))
	})

	t.Run("exclusive borrow anywhere blocks", func(t *testing.T) {
		v := FromSlice([]int{1, 2, 3})
		a, err := v.GetMut(2)
		require.NoError(t, err)

		_, err = v.TryIter()
		require.ErrorIs(t, err, ErrAliasing)

		// Dropping the guard re-permits iteration.
		a.Release()
		seq, err := v.TryIter()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	})

	t.Run("early break", func(t *testing.T) {
		v := FromSlice([]int{1, 2, 3})
		seq, err := v.TryIter()
		require.NoError(t, err)

		var got []int
		for e := range seq {
			got = append(got, e)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{1, 2}, got)
	})
}

func TestIterMut(t *testing.T) {
	t.Run("mutates in place", func(t *testing.T) {
		v := FromSlice([]int{1, 2, 3})
		for p := range v.IterMut() {
			*p *= 10
		}

		seq, err := v.TryIter()
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20, 30}, slices.Collect(seq))
	})

	t.Run("panics while borrowed", func(t *testing.T) {
		v := FromSlice([]int{1})
		a, err := v.Get(0)
		require.NoError(t, err)
		defer a.Release()

		require.Panics(t, func() { v.IterMut() })
	})
}

func TestDrain(t *testing.T) {
	t.Run("consumes elements in order", func(t *testing.T) {
		v := FromSlice([]string{"a", "b"})
		assert.Equal(t, []string{"a", "b"}, slices.Collect(v.Drain()))
		require.True(t, v.IsEmpty())
	})

	t.Run("container is reusable after drain", func(t *testing.T) {
		v := FromSlice([]int{1, 2})
		for range v.Drain() {
		}
		v.Push(3)
		require.Equal(t, 1, v.Len())

		a, err := v.Get(0)
		require.NoError(t, err)
		defer a.Release()
		assert.Equal(t, 3, a.Value())
	})

	t.Run("panics while borrowed", func(t *testing.T) {
		v := FromSlice([]int{1})
		a, err := v.GetMut(0)
		require.NoError(t, err)
		defer a.Release()

		require.Panics(t, func() { v.Drain() })
	})
}
