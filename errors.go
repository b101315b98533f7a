// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package tinybit

import "errors"

var (
	// ErrInvalidCapacity is returned when a capacity is outside [1, 64]
	// or does not match the width of the backing word.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrOutOfRange is returned when an element is outside [1, capacity].
	ErrOutOfRange = errors.New("element out of range")
	// ErrCapacityMismatch is returned when two sets (or a set and a raw
	// bit pattern) with different capacities are combined.
	ErrCapacityMismatch = errors.New("capacity mismatch")
)
