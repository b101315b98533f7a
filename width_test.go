// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package tinybit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	for _, tc := range []struct {
		capacity int
		expected int
	}{
		{1, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{17, 32},
		{32, 32},
		{33, 64},
		{64, 64},
	} {
		got, err := Width(tc.capacity)
		require.NoError(t, err)
		require.Equal(t, tc.expected, got, "capacity %d", tc.capacity)
	}

	for _, capacity := range []int{-64, 0, 65} {
		_, err := Width(capacity)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestFullMask(t *testing.T) {
	require.Equal(t, uint8(0xff), fullMask[uint8](8))
	require.Equal(t, uint8(0x1f), fullMask[uint8](5))
	require.Equal(t, uint16(0xffff), fullMask[uint16](16))
	require.Equal(t, uint32(0xffff_ffff), fullMask[uint32](32))
	require.Equal(t, ^uint64(0), fullMask[uint64](64))
	require.Equal(t, uint64(1<<33-1), fullMask[uint64](33))
}

func TestWordBits(t *testing.T) {
	type myWord uint16

	require.Equal(t, 8, wordBits[uint8]())
	require.Equal(t, 16, wordBits[uint16]())
	require.Equal(t, 16, wordBits[myWord]())
	require.Equal(t, 32, wordBits[uint32]())
	require.Equal(t, 64, wordBits[uint64]())
}
