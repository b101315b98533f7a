// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func elements(t *testing.T, s Set) []int {
	t.Helper()
	var elems []int
	for {
		i, ok := s.PopSmallest()
		if !ok {
			return elems
		}
		elems = append(elems, i)
	}
}

func TestRunnerSetAlgebra(t *testing.T) {
	for _, r := range Runners() {
		t.Run(r.Name, func(t *testing.T) {
			for _, tc := range []struct {
				name     string
				op       func(a, b Set) (Set, error)
				expected []int
			}{
				{"union", Set.Union, []int{1, 3, 5, 7, 8}},
				{"intersection", Set.Intersection, []int{3, 5}},
				{"left difference", Set.LeftDifference, []int{1, 7}},
				{"right difference", Set.RightDifference, []int{8}},
			} {
				a, err := r.fill(9, []int{1, 3, 5, 7})
				require.NoError(t, err)
				b, err := r.fill(9, []int{3, 5, 8})
				require.NoError(t, err)

				got, err := tc.op(a, b)
				require.NoError(t, err, tc.name)
				require.Equal(t, len(tc.expected), got.Size(), tc.name)
				require.Equal(t, tc.expected, elements(t, got), tc.name)
				require.Equal(t, 4, a.Size())
				require.Equal(t, 3, b.Size())
			}
		})
	}
}

func TestRunnerElementOps(t *testing.T) {
	for _, r := range Runners() {
		t.Run(r.Name, func(t *testing.T) {
			s, err := r.New(17)
			require.NoError(t, err)
			for _, i := range []int{5, 7, 17} {
				require.NoError(t, s.Insert(i))
			}
			ok, err := s.Contains(7)
			require.NoError(t, err)
			require.True(t, ok)

			i, ok := s.PopSmallest()
			require.True(t, ok)
			require.Equal(t, 5, i)
			i, ok = s.PopLargest()
			require.True(t, ok)
			require.Equal(t, 17, i)

			require.NoError(t, s.Remove(7))
			require.Equal(t, 0, s.Size())
			_, ok = s.PopSmallest()
			require.False(t, ok)
			_, ok = s.PopLargest()
			require.False(t, ok)

			require.Error(t, s.Insert(0))
			require.Error(t, s.Insert(18))
			require.Error(t, s.Remove(18))
			_, err = s.Contains(0)
			require.Error(t, err)
		})
	}
}

func TestRunnerTime(t *testing.T) {
	w, err := NewWorkload(1, 64, 500)
	require.NoError(t, err)
	for _, r := range Runners() {
		for _, op := range AllOps {
			elapsed, err := r.Time(op, w)
			require.NoError(t, err, "%s %v", r.Name, op)
			require.GreaterOrEqual(t, int64(elapsed), int64(0))
		}
	}

	_, err = TinybitRunner.Time(Op(99), w)
	require.Error(t, err)
}

func TestDrain(t *testing.T) {
	got, err := MapRunner.Drain(10, []int{9, 2, 2, 10, 4})
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 9, 10}, got)
	require.True(t, slices.IsSorted(got))
}

func TestRunnersByName(t *testing.T) {
	runners, err := RunnersByName([]string{"roaring", "tinybit"})
	require.NoError(t, err)
	require.Len(t, runners, 2)
	require.Equal(t, "roaring", runners[0].Name)
	require.Equal(t, "tinybit", runners[1].Name)

	_, err = RunnersByName([]string{"btree"})
	require.Error(t, err)
}
