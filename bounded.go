// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package tinybit

import (
	"fmt"
	"iter"
)

// Bounded is implemented by *Set[W] for every Word type. It lets callers
// pick the capacity at run time without naming the backing word.
type Bounded interface {
	Capacity() int
	Width() int
	Uint64() uint64

	Insert(i int) error
	Remove(i int) error
	Contains(i int) (bool, error)

	FillAll()
	RemoveAll()
	Invert()

	PopSmallest() (int, bool)
	PopLargest() (int, bool)
	PopElement(i int) (bool, error)

	Size() int
	IsEmpty() bool
	All() iter.Seq[int]
	Elements() []int
	BitString() string
	String() string
}

var (
	_ Bounded = (*Set[uint8])(nil)
	_ Bounded = (*Set[uint16])(nil)
	_ Bounded = (*Set[uint32])(nil)
	_ Bounded = (*Set[uint64])(nil)
)

// NewBounded returns an empty set of 1..capacity backed by the narrowest
// word that fits.
func NewBounded(capacity int) (Bounded, error) {
	return BoundedFromUint64(capacity, 0)
}

// BoundedFromUint64 returns a set of 1..capacity holding the given bit
// pattern. The pattern must fit in the word chosen for capacity; beyond
// that it is trusted like FromBits: bits at positions >= capacity must
// already be 0.
func BoundedFromUint64(capacity int, bits uint64) (Bounded, error) {
	width, err := Width(capacity)
	if err != nil {
		return nil, err
	}
	if width < 64 && bits>>uint(width) != 0 {
		return nil, fmt.Errorf("%w: bit pattern %#x does not fit in %d bits", ErrCapacityMismatch, bits, width)
	}
	switch width {
	case 8:
		return boundedFromBits(capacity, uint8(bits))
	case 16:
		return boundedFromBits(capacity, uint16(bits))
	case 32:
		return boundedFromBits(capacity, uint32(bits))
	default:
		return boundedFromBits(capacity, bits)
	}
}

func boundedFromBits[W Word](capacity int, bits W) (Bounded, error) {
	s, err := FromBits(capacity, bits)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func combine(a, b Bounded, op func(x, y uint64) uint64) (Bounded, error) {
	if a.Capacity() != b.Capacity() {
		return nil, fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, a.Capacity(), b.Capacity())
	}
	return BoundedFromUint64(a.Capacity(), op(a.Uint64(), b.Uint64()))
}

// Union returns a new set with the elements of a or b.
func Union(a, b Bounded) (Bounded, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x | y })
}

// Intersection returns a new set with the elements in both a and b.
func Intersection(a, b Bounded) (Bounded, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x & y })
}

// LeftDifference returns a new set with the elements of a not in b.
func LeftDifference(a, b Bounded) (Bounded, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x &^ y })
}

// RightDifference returns a new set with the elements of b not in a.
func RightDifference(a, b Bounded) (Bounded, error) {
	return combine(a, b, func(x, y uint64) uint64 { return y &^ x })
}

// Equal reports whether a and b hold the same elements.
func Equal(a, b Bounded) (bool, error) {
	if a.Capacity() != b.Capacity() {
		return false, fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, a.Capacity(), b.Capacity())
	}
	return a.Uint64() == b.Uint64(), nil
}
