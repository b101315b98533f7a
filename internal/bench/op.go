// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import "fmt"

// Op is a set operation timed by Run.
type Op int

const (
	OpInsert Op = iota
	OpRemove
	OpContains
	OpUnion
	OpIntersection
	OpLeftDifference
	OpRightDifference
	OpPopSmallest
	OpPopLargest
)

// AllOps lists every Op in report order.
var AllOps = []Op{
	OpInsert,
	OpRemove,
	OpContains,
	OpUnion,
	OpIntersection,
	OpLeftDifference,
	OpRightDifference,
	OpPopSmallest,
	OpPopLargest,
}

var opNames = [...]string{
	OpInsert:          "insert",
	OpRemove:          "remove",
	OpContains:        "contains",
	OpUnion:           "union",
	OpIntersection:    "intersection",
	OpLeftDifference:  "left-difference",
	OpRightDifference: "right-difference",
	OpPopSmallest:     "pop-smallest",
	OpPopLargest:      "pop-largest",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// ParseOp returns the Op whose String form is name.
func ParseOp(name string) (Op, error) {
	for _, op := range AllOps {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown op %q", name)
}
