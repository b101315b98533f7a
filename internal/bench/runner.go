// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Set is the subset of set behaviour every contender provides. Binary
// operations are only called with a Set produced by the same Runner.
type Set interface {
	Insert(i int) error
	Remove(i int) error
	Contains(i int) (bool, error)
	Union(other Set) (Set, error)
	Intersection(other Set) (Set, error)
	LeftDifference(other Set) (Set, error)
	RightDifference(other Set) (Set, error)
	PopSmallest() (int, bool)
	PopLargest() (int, bool)
	Size() int
}

// Runner times one set implementation.
type Runner struct {
	Name string
	New  func(capacity int) (Set, error)
}

var errOutOfRange = errors.New("element out of range")

func checkRange(i, capacity int) error {
	if i < 1 || i > capacity {
		return fmt.Errorf("%w: %d is outside [1, %d]", errOutOfRange, i, capacity)
	}
	return nil
}

// keeps the compiler from discarding timed work
var sink int

// Runners returns every built-in runner, tinybit first.
func Runners() []Runner {
	return []Runner{
		TinybitRunner,
		MapRunner,
		BitsetRunner,
		RoaringRunner,
	}
}

// RunnersByName returns the built-in runners with the given names, in
// the order given.
func RunnersByName(names []string) ([]Runner, error) {
	all := Runners()
	var runners []Runner
	for _, name := range names {
		found := false
		for _, r := range all {
			if r.Name == name {
				runners = append(runners, r)
				found = true
				break
			}
		}
		if !found {
			known := make([]string, len(all))
			for i, r := range all {
				known[i] = r.Name
			}
			return nil, fmt.Errorf("unknown runner %q (known: %s)", name, strings.Join(known, ", "))
		}
	}
	return runners, nil
}

func (r Runner) fill(capacity int, elems []int) (Set, error) {
	s, err := r.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: New(%d): %w", r.Name, capacity, err)
	}
	for _, e := range elems {
		if err := s.Insert(e); err != nil {
			return nil, fmt.Errorf("%s: Insert(%d): %w", r.Name, e, err)
		}
	}
	return s, nil
}

// Time measures op over the workload. Element operations run once per
// element of w.Elems. Binary operations run once on the sets built from
// w.Elems and w.Other. Pops drain the set built from w.Elems.
func (r Runner) Time(op Op, w Workload) (time.Duration, error) {
	if op == OpInsert {
		s, err := r.New(w.Capacity)
		if err != nil {
			return 0, fmt.Errorf("%s: New(%d): %w", r.Name, w.Capacity, err)
		}
		start := time.Now()
		for _, e := range w.Elems {
			if err := s.Insert(e); err != nil {
				return 0, err
			}
		}
		elapsed := time.Since(start)
		sink += s.Size()
		return elapsed, nil
	}

	a, err := r.fill(w.Capacity, w.Elems)
	if err != nil {
		return 0, err
	}
	var b Set
	switch op {
	case OpUnion, OpIntersection, OpLeftDifference, OpRightDifference:
		if b, err = r.fill(w.Capacity, w.Other); err != nil {
			return 0, err
		}
	}

	var binary func(Set) (Set, error)
	switch op {
	case OpRemove:
		start := time.Now()
		for _, e := range w.Elems {
			if err := a.Remove(e); err != nil {
				return 0, err
			}
		}
		return time.Since(start), nil
	case OpContains:
		start := time.Now()
		for _, e := range w.Elems {
			ok, err := a.Contains(e)
			if err != nil {
				return 0, err
			}
			if ok {
				sink++
			}
		}
		return time.Since(start), nil
	case OpPopSmallest, OpPopLargest:
		pop := a.PopSmallest
		if op == OpPopLargest {
			pop = a.PopLargest
		}
		start := time.Now()
		for {
			i, ok := pop()
			if !ok {
				break
			}
			sink += i
		}
		return time.Since(start), nil
	case OpUnion:
		binary = a.Union
	case OpIntersection:
		binary = a.Intersection
	case OpLeftDifference:
		binary = a.LeftDifference
	case OpRightDifference:
		binary = a.RightDifference
	default:
		return 0, fmt.Errorf("unknown op %v", op)
	}

	start := time.Now()
	result, err := binary(b)
	elapsed := time.Since(start)
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", r.Name, op, err)
	}
	sink += result.Size()
	return elapsed, nil
}

// Drain inserts elems into a new set of the given capacity and pops the
// smallest element until the set is empty.
func (r Runner) Drain(capacity int, elems []int) ([]int, error) {
	s, err := r.fill(capacity, elems)
	if err != nil {
		return nil, err
	}
	var order []int
	for {
		i, ok := s.PopSmallest()
		if !ok {
			return order, nil
		}
		order = append(order, i)
	}
}
