// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	w, err := NewWorkload(3, 35, 200)
	require.NoError(t, err)

	ops := []Op{OpInsert, OpUnion, OpPopLargest}
	results, err := Run(context.Background(), Runners(), ops, w)
	require.NoError(t, err)
	require.Len(t, results, len(ops)*len(Runners()))
	require.Equal(t, OpInsert, results[0].Op)
	require.Equal(t, "tinybit", results[0].Runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err = Run(ctx, Runners(), ops, w)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestVerify(t *testing.T) {
	for _, capacity := range []int{5, 9, 35, 64} {
		w, err := NewWorkload(int64(capacity), capacity, 300)
		require.NoError(t, err)
		require.NoError(t, Verify(Runners(), w))
	}
	require.NoError(t, Verify(nil, Workload{}))

	broken := Runner{
		Name: "broken",
		New: func(capacity int) (Set, error) {
			return reversedSet{&mapSet{m: make(map[int]struct{}), capacity: capacity}}, nil
		},
	}
	w, err := NewWorkload(1, 8, 50)
	require.NoError(t, err)
	require.Error(t, Verify([]Runner{TinybitRunner, broken}, w))
}

// reversedSet pops from the wrong end.
type reversedSet struct {
	*mapSet
}

func (s reversedSet) PopSmallest() (int, bool) {
	return s.mapSet.PopLargest()
}

func TestWriteReport(t *testing.T) {
	results := []Result{
		{Runner: "tinybit", Op: OpInsert, Elapsed: 2 * time.Millisecond},
		{Runner: "map", Op: OpInsert, Elapsed: 40 * time.Millisecond},
		{Runner: "tinybit", Op: OpPopSmallest, Elapsed: time.Microsecond},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"op", "tinybit", "map"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"insert", "2ms", "40ms"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"pop-smallest", "1µs", "-"}, strings.Fields(lines[2]))
}
