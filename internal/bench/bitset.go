// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import "github.com/bits-and-blooms/bitset"

// BitsetRunner times github.com/bits-and-blooms/bitset. Element i is
// stored at index i; index 0 is unused.
var BitsetRunner = Runner{
	Name: "bitset",
	New: func(capacity int) (Set, error) {
		return &bitsetSet{b: bitset.New(uint(capacity + 1)), capacity: capacity}, nil
	},
}

type bitsetSet struct {
	b        *bitset.BitSet
	capacity int
}

func (s *bitsetSet) Insert(i int) error {
	if err := checkRange(i, s.capacity); err != nil {
		return err
	}
	s.b.Set(uint(i))
	return nil
}

func (s *bitsetSet) Remove(i int) error {
	if err := checkRange(i, s.capacity); err != nil {
		return err
	}
	s.b.Clear(uint(i))
	return nil
}

func (s *bitsetSet) Contains(i int) (bool, error) {
	if err := checkRange(i, s.capacity); err != nil {
		return false, err
	}
	return s.b.Test(uint(i)), nil
}

func (s *bitsetSet) with(b *bitset.BitSet) Set {
	return &bitsetSet{b: b, capacity: s.capacity}
}

func (s *bitsetSet) Union(other Set) (Set, error) {
	return s.with(s.b.Union(other.(*bitsetSet).b)), nil
}

func (s *bitsetSet) Intersection(other Set) (Set, error) {
	return s.with(s.b.Intersection(other.(*bitsetSet).b)), nil
}

func (s *bitsetSet) LeftDifference(other Set) (Set, error) {
	return s.with(s.b.Difference(other.(*bitsetSet).b)), nil
}

func (s *bitsetSet) RightDifference(other Set) (Set, error) {
	return s.with(other.(*bitsetSet).b.Difference(s.b)), nil
}

func (s *bitsetSet) PopSmallest() (int, bool) {
	i, ok := s.b.NextSet(1)
	if !ok {
		return 0, false
	}
	s.b.Clear(i)
	return int(i), true
}

func (s *bitsetSet) PopLargest() (int, bool) {
	for i := uint(s.capacity); i >= 1; i-- {
		if s.b.Test(i) {
			s.b.Clear(i)
			return int(i), true
		}
	}
	return 0, false
}

func (s *bitsetSet) Size() int {
	return int(s.b.Count())
}
