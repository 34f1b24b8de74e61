// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package interval

import (
	"errors"
	"fmt"

	"github.com/richardwilkes/toolbox/errs"
)

// ErrNegativeLength is the cause of errors produced when an interval with a
// negative length is encountered.
var ErrNegativeLength = errors.New("negative interval length")

// Interval holds a starting position and a length, covering the half-open
// range [Start, Start+Length).
type Interval struct {
	Start  int64
	Length int64
}

// New creates a new interval. A negative length is rejected.
func New(start, length int64) (Interval, error) {
	if length < 0 {
		return Interval{}, errs.NewWithCausef(ErrNegativeLength, "interval at %d has length %d", start, length)
	}
	return Interval{Start: start, Length: length}, nil
}

// End returns the first position past the end of the interval.
func (iv Interval) End() int64 {
	return iv.Start + iv.Length
}

// IsEmpty returns true if the interval covers nothing.
func (iv Interval) IsEmpty() bool {
	return iv.Length <= 0
}

// Contains returns true if the position lies within the interval.
func (iv Interval) Contains(v int64) bool {
	return v >= iv.Start && v < iv.End()
}

// Overlaps returns true if the two intervals share at least one position.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	if iv.Start > other.Start {
		return other.Overlaps(iv)
	}
	return other.Start < iv.End()
}

// Abuts returns true if one interval ends exactly where the other begins.
func (iv Interval) Abuts(other Interval) bool {
	return iv.End() == other.Start || other.End() == iv.Start
}

// Intersect returns the positions shared by both intervals. The second return
// is false if there are none.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	start := max(iv.Start, other.Start)
	return Interval{Start: start, Length: min(iv.End(), other.End()) - start}, true
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End())
}

// Validate returns an error for the first interval in the list with a negative
// length.
func Validate(list []Interval) error {
	for i, one := range list {
		if one.Length < 0 {
			return errs.NewWithCausef(ErrNegativeLength, "interval %d %v has length %d", i, one, one.Length)
		}
	}
	return nil
}

// TotalLength returns the sum of the lengths of the intervals.
func TotalLength(list []Interval) int64 {
	var total int64
	for _, one := range list {
		total += one.Length
	}
	return total
}
