// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

// MapRunner times a map-backed set, the baseline tinybit is measured
// against.
var MapRunner = Runner{
	Name: "map",
	New: func(capacity int) (Set, error) {
		return &mapSet{m: make(map[int]struct{}), capacity: capacity}, nil
	},
}

type mapSet struct {
	m        map[int]struct{}
	capacity int
}

func (s *mapSet) Insert(i int) error {
	if err := checkRange(i, s.capacity); err != nil {
		return err
	}
	s.m[i] = struct{}{}
	return nil
}

func (s *mapSet) Remove(i int) error {
	if err := checkRange(i, s.capacity); err != nil {
		return err
	}
	delete(s.m, i)
	return nil
}

func (s *mapSet) Contains(i int) (bool, error) {
	if err := checkRange(i, s.capacity); err != nil {
		return false, err
	}
	_, ok := s.m[i]
	return ok, nil
}

func (s *mapSet) filtered(other *mapSet, keep func(inS, inOther bool) bool) *mapSet {
	result := &mapSet{m: make(map[int]struct{}), capacity: s.capacity}
	for i := range s.m {
		if _, ok := other.m[i]; keep(true, ok) {
			result.m[i] = struct{}{}
		}
	}
	for i := range other.m {
		if _, ok := s.m[i]; !ok && keep(false, true) {
			result.m[i] = struct{}{}
		}
	}
	return result
}

func (s *mapSet) Union(other Set) (Set, error) {
	return s.filtered(other.(*mapSet), func(a, b bool) bool { return a || b }), nil
}

func (s *mapSet) Intersection(other Set) (Set, error) {
	return s.filtered(other.(*mapSet), func(a, b bool) bool { return a && b }), nil
}

func (s *mapSet) LeftDifference(other Set) (Set, error) {
	return s.filtered(other.(*mapSet), func(a, b bool) bool { return a && !b }), nil
}

func (s *mapSet) RightDifference(other Set) (Set, error) {
	return s.filtered(other.(*mapSet), func(a, b bool) bool { return !a && b }), nil
}

// pop removes and returns the key that better prefers over every other
// key. It scans the whole map.
func (s *mapSet) pop(better func(a, b int) bool) (int, bool) {
	found := false
	var best int
	for i := range s.m {
		if !found || better(i, best) {
			best = i
			found = true
		}
	}
	if found {
		delete(s.m, best)
	}
	return best, found
}

func (s *mapSet) PopSmallest() (int, bool) {
	return s.pop(func(a, b int) bool { return a < b })
}

func (s *mapSet) PopLargest() (int, bool) {
	return s.pop(func(a, b int) bool { return a > b })
}

func (s *mapSet) Size() int {
	return len(s.m)
}
