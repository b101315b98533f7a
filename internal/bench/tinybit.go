// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import "github.com/bpowers/tinybit"

// TinybitRunner times tinybit sets, with the word picked at run time.
var TinybitRunner = Runner{
	Name: "tinybit",
	New: func(capacity int) (Set, error) {
		b, err := tinybit.NewBounded(capacity)
		if err != nil {
			return nil, err
		}
		return tinybitSet{b}, nil
	},
}

type tinybitSet struct {
	tinybit.Bounded
}

func (s tinybitSet) Union(other Set) (Set, error) {
	return wrapBounded(tinybit.Union(s.Bounded, other.(tinybitSet).Bounded))
}

func (s tinybitSet) Intersection(other Set) (Set, error) {
	return wrapBounded(tinybit.Intersection(s.Bounded, other.(tinybitSet).Bounded))
}

func (s tinybitSet) LeftDifference(other Set) (Set, error) {
	return wrapBounded(tinybit.LeftDifference(s.Bounded, other.(tinybitSet).Bounded))
}

func (s tinybitSet) RightDifference(other Set) (Set, error) {
	return wrapBounded(tinybit.RightDifference(s.Bounded, other.(tinybitSet).Bounded))
}

func wrapBounded(b tinybit.Bounded, err error) (Set, error) {
	if err != nil {
		return nil, err
	}
	return tinybitSet{b}, nil
}
