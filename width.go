// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package tinybit

import (
	"fmt"
	"math/bits"
)

// MaxCapacity is the largest universe a set can represent.
const MaxCapacity = 64

// Word is the set of unsigned integer types that can back a Set.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of the narrowest word (8, 16, 32 or 64)
// that can hold a set with the given capacity.
func Width(capacity int) (int, error) {
	switch {
	case capacity < 1 || capacity > MaxCapacity:
		return 0, fmt.Errorf("%w: %d is outside [1, %d]", ErrInvalidCapacity, capacity, MaxCapacity)
	case capacity < 9:
		return 8, nil
	case capacity < 17:
		return 16, nil
	case capacity < 33:
		return 32, nil
	default:
		return 64, nil
	}
}

func wordBits[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// fullMask has bits 0..capacity-1 set. A capacity equal to the word
// width never shifts by the full width.
func fullMask[W Word](capacity int) W {
	if capacity >= wordBits[W]() {
		return ^W(0)
	}
	return W(1)<<uint(capacity) - 1
}

func checkCapacity[W Word](capacity int) error {
	width, err := Width(capacity)
	if err != nil {
		return err
	}
	if got := wordBits[W](); got != width {
		return fmt.Errorf("%w: capacity %d needs a %d-bit word, got %d-bit", ErrInvalidCapacity, capacity, width, got)
	}
	return nil
}
