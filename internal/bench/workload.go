// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/bpowers/tinybit"
)

// Workload is the input shared by every runner: two streams of elements
// drawn uniformly from 1..Capacity, with repeats.
type Workload struct {
	Capacity int
	Seed     int64
	Elems    []int
	Other    []int
}

// RandomSeed returns a seed read from crypto/rand.
func RandomSeed() int64 {
	var seedBytes [8]byte
	_, _ = crand.Read(seedBytes[:])
	return int64(binary.LittleEndian.Uint64(seedBytes[:]))
}

// NewWorkload draws n elements for each operand. The same seed always
// yields the same workload.
func NewWorkload(seed int64, capacity, n int) (Workload, error) {
	if _, err := tinybit.Width(capacity); err != nil {
		return Workload{}, err
	}
	if n < 1 {
		return Workload{}, fmt.Errorf("workload size %d must be positive", n)
	}
	rng := rand.New(rand.NewSource(seed))
	w := Workload{
		Capacity: capacity,
		Seed:     seed,
		Elems:    make([]int, n),
		Other:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		w.Elems[i] = rng.Intn(capacity) + 1
		w.Other[i] = rng.Intn(capacity) + 1
	}
	return w, nil
}
