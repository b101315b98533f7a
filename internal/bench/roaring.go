// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import "github.com/RoaringBitmap/roaring/v2"

// RoaringRunner times github.com/RoaringBitmap/roaring/v2.
var RoaringRunner = Runner{
	Name: "roaring",
	New: func(capacity int) (Set, error) {
		return &roaringSet{b: roaring.New(), capacity: capacity}, nil
	},
}

type roaringSet struct {
	b        *roaring.Bitmap
	capacity int
}

func (s *roaringSet) Insert(i int) error {
	if err := checkRange(i, s.capacity); err != nil {
		return err
	}
	s.b.Add(uint32(i))
	return nil
}

func (s *roaringSet) Remove(i int) error {
	if err := checkRange(i, s.capacity); err != nil {
		return err
	}
	s.b.Remove(uint32(i))
	return nil
}

func (s *roaringSet) Contains(i int) (bool, error) {
	if err := checkRange(i, s.capacity); err != nil {
		return false, err
	}
	return s.b.Contains(uint32(i)), nil
}

func (s *roaringSet) with(b *roaring.Bitmap) Set {
	return &roaringSet{b: b, capacity: s.capacity}
}

func (s *roaringSet) Union(other Set) (Set, error) {
	return s.with(roaring.Or(s.b, other.(*roaringSet).b)), nil
}

func (s *roaringSet) Intersection(other Set) (Set, error) {
	return s.with(roaring.And(s.b, other.(*roaringSet).b)), nil
}

func (s *roaringSet) LeftDifference(other Set) (Set, error) {
	return s.with(roaring.AndNot(s.b, other.(*roaringSet).b)), nil
}

func (s *roaringSet) RightDifference(other Set) (Set, error) {
	return s.with(roaring.AndNot(other.(*roaringSet).b, s.b)), nil
}

func (s *roaringSet) PopSmallest() (int, bool) {
	if s.b.IsEmpty() {
		return 0, false
	}
	i := s.b.Minimum()
	s.b.Remove(i)
	return int(i), true
}

func (s *roaringSet) PopLargest() (int, bool) {
	if s.b.IsEmpty() {
		return 0, false
	}
	i := s.b.Maximum()
	s.b.Remove(i)
	return int(i), true
}

func (s *roaringSet) Size() int {
	return int(s.b.GetCardinality())
}
