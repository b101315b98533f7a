// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package tinybit

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Set is a set of the integers 1..N, N <= 64, stored in a single word.
// Element i is bit i-1 of the word. W must be the narrowest of
// uint8/uint16/uint32/uint64 that holds N bits; see Width.
//
// The zero value has capacity 0 and rejects every element. Use New or
// FromBits to construct a usable set.
type Set[W Word] struct {
	bits     W
	capacity uint8
}

// New returns an empty set of the integers 1..capacity.
func New[W Word](capacity int) (Set[W], error) {
	if err := checkCapacity[W](capacity); err != nil {
		return Set[W]{}, err
	}
	return Set[W]{capacity: uint8(capacity)}, nil
}

// MustNew is like New but panics if the capacity is invalid for W.
func MustNew[W Word](capacity int) Set[W] {
	s, err := New[W](capacity)
	if err != nil {
		panic(err)
	}
	return s
}

// FromBits returns a set whose membership is the given bit pattern.
// The pattern is trusted: bits at positions >= capacity must already be 0.
func FromBits[W Word](capacity int, pattern W) (Set[W], error) {
	if err := checkCapacity[W](capacity); err != nil {
		return Set[W]{}, err
	}
	return Set[W]{bits: pattern, capacity: uint8(capacity)}, nil
}

func (s Set[W]) check(i int) error {
	if i < 1 || i > int(s.capacity) {
		return fmt.Errorf("%w: %d is outside [1, %d]", ErrOutOfRange, i, s.capacity)
	}
	return nil
}

func (s Set[W]) checkSame(other Set[W]) error {
	if s.capacity != other.capacity {
		return fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, s.capacity, other.capacity)
	}
	return nil
}

func bit[W Word](i int) W {
	return W(1) << uint(i-1)
}

func (s Set[W]) mask() W {
	return fullMask[W](int(s.capacity))
}

// Capacity returns N, the largest element the set can hold.
func (s Set[W]) Capacity() int { return int(s.capacity) }

// Width returns the bit width of the backing word.
func (s Set[W]) Width() int { return wordBits[W]() }

// Bits returns the raw bit pattern.
func (s Set[W]) Bits() W { return s.bits }

// Uint64 returns the raw bit pattern widened to 64 bits.
func (s Set[W]) Uint64() uint64 { return uint64(s.bits) }

// Insert adds i to the set.
func (s *Set[W]) Insert(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.bits |= bit[W](i)
	return nil
}

// Remove removes i from the set. Removing an absent element is a no-op.
func (s *Set[W]) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.bits &^= bit[W](i)
	return nil
}

// Contains reports whether i is in the set.
func (s Set[W]) Contains(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	return s.bits&bit[W](i) != 0, nil
}

// FillAll adds every element 1..N.
func (s *Set[W]) FillAll() {
	s.bits = s.mask()
}

// RemoveAll empties the set.
func (s *Set[W]) RemoveAll() {
	s.bits = 0
}

// Invert replaces the set with its complement in 1..N.
func (s *Set[W]) Invert() {
	s.bits = ^s.bits & s.mask()
}

// Union returns the elements in s or other.
func (s Set[W]) Union(other Set[W]) (Set[W], error) {
	if err := s.checkSame(other); err != nil {
		return Set[W]{}, err
	}
	return s.UnionBits(other.bits), nil
}

// Intersection returns the elements in both s and other.
func (s Set[W]) Intersection(other Set[W]) (Set[W], error) {
	if err := s.checkSame(other); err != nil {
		return Set[W]{}, err
	}
	return s.IntersectionBits(other.bits), nil
}

// LeftDifference returns the elements in s that are not in other.
func (s Set[W]) LeftDifference(other Set[W]) (Set[W], error) {
	if err := s.checkSame(other); err != nil {
		return Set[W]{}, err
	}
	return s.LeftDifferenceBits(other.bits), nil
}

// RightDifference returns the elements in other that are not in s.
func (s Set[W]) RightDifference(other Set[W]) (Set[W], error) {
	if err := s.checkSame(other); err != nil {
		return Set[W]{}, err
	}
	return s.RightDifferenceBits(other.bits), nil
}

// UnionBits is Union with a raw bit pattern as the other operand.
// Bits of b at positions >= N are ignored.
func (s Set[W]) UnionBits(b W) Set[W] {
	s.bits |= b & s.mask()
	return s
}

// IntersectionBits is Intersection with a raw bit pattern.
func (s Set[W]) IntersectionBits(b W) Set[W] {
	s.bits &= b
	return s
}

// LeftDifferenceBits is LeftDifference with a raw bit pattern.
func (s Set[W]) LeftDifferenceBits(b W) Set[W] {
	s.bits &^= b
	return s
}

// RightDifferenceBits is RightDifference with a raw bit pattern.
func (s Set[W]) RightDifferenceBits(b W) Set[W] {
	s.bits = b & s.mask() &^ s.bits
	return s
}

// PopSmallest removes and returns the smallest element. It returns
// false if the set is empty.
func (s *Set[W]) PopSmallest() (int, bool) {
	if s.bits == 0 {
		return 0, false
	}
	i := bits.TrailingZeros64(uint64(s.bits)) + 1
	s.bits &^= bit[W](i)
	return i, true
}

// PopLargest removes and returns the largest element. It returns
// false if the set is empty.
func (s *Set[W]) PopLargest() (int, bool) {
	if s.bits == 0 {
		return 0, false
	}
	i := bits.Len64(uint64(s.bits))
	s.bits &^= bit[W](i)
	return i, true
}

// PopElement removes i and reports whether it was present.
func (s *Set[W]) PopElement(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	b := bit[W](i)
	if s.bits&b == 0 {
		return false, nil
	}
	s.bits &^= b
	return true, nil
}

// Size returns the number of elements in the set.
func (s Set[W]) Size() int {
	return bits.OnesCount64(uint64(s.bits))
}

// IsEmpty reports whether the set has no elements.
func (s Set[W]) IsEmpty() bool {
	return s.bits == 0
}

// All returns an iterator over the elements in ascending order.
// The iterator sees the set as it was when All was called.
func (s Set[W]) All() iter.Seq[int] {
	b := uint64(s.bits)
	return func(yield func(int) bool) {
		for rest := b; rest != 0; rest &= rest - 1 {
			if !yield(bits.TrailingZeros64(rest) + 1) {
				return
			}
		}
	}
}

// Elements returns the elements in ascending order.
func (s Set[W]) Elements() []int {
	elems := make([]int, 0, s.Size())
	for i := range s.All() {
		elems = append(elems, i)
	}
	return elems
}

// BitString renders the set as N binary digits, element N first.
func (s Set[W]) BitString() string {
	str := strconv.FormatUint(uint64(s.bits), 2)
	if pad := int(s.capacity) - len(str); pad > 0 {
		str = strings.Repeat("0", pad) + str
	}
	return str
}

func (s Set[W]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range s.All() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal reports whether s and other hold the same elements. Comparing
// sets of different capacity is a programming error and panics.
func (s Set[W]) Equal(other Set[W]) bool {
	if err := s.checkSame(other); err != nil {
		panic(err)
	}
	return s.bits == other.bits
}

// Assign replaces the contents of s with those of src.
func (s *Set[W]) Assign(src Set[W]) error {
	if err := s.checkSame(src); err != nil {
		return err
	}
	s.bits = src.bits
	return nil
}
