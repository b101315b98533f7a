// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package tinybit implements sets of the small integers 1..N, N <= 64,
// stored as the bits of a single unsigned word. Insertion, removal,
// membership and the binary set operations are all O(1).
//
// The backing word is the narrowest of uint8, uint16, uint32 and uint64
// that holds N bits:
//
//	s, err := tinybit.New[uint16](9)
//	_ = s.Insert(3)
//
// When N is only known at run time, NewBounded picks the word:
//
//	b, err := tinybit.NewBounded(n)
//
// Bits and FromBits expose the raw pattern. It is a host integer, not a
// portable encoding; store it next to the capacity if it must be persisted.
//
// A Set is not safe for concurrent mutation.
package tinybit
