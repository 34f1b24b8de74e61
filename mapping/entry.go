// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package mapping

import (
	"fmt"

	"github.com/richardwilkes/remap/container/interval"
)

// Entry maps the positions of its source interval onto the interval of the
// same length that begins at Destination.
type Entry struct {
	Destination int64
	Source      interval.Interval
}

// Offset returns the amount added to a source position to obtain its
// destination.
func (e Entry) Offset() int64 {
	return e.Destination - e.Source.Start
}

// Apply maps a single position. The second return is false if the position
// lies outside the source interval.
func (e Entry) Apply(v int64) (int64, bool) {
	if !e.Source.Contains(v) {
		return v, false
	}
	return v + e.Offset(), true
}

// Shrink maps the portion of the candidate covered by the source interval.
// The leftovers are the pieces of the candidate that lie before and after the
// source interval; they are not mapped by this entry. The third return is
// false if the candidate does not overlap the source interval at all.
func (e Entry) Shrink(candidate interval.Interval) (mapped interval.Interval, leftovers []interval.Interval, ok bool) {
	x, ok := e.Source.Intersect(candidate)
	if !ok {
		return interval.Interval{}, nil, false
	}
	mapped = interval.Interval{Start: e.Destination + (x.Start - e.Source.Start), Length: x.Length}
	if candidate.Start < e.Source.Start {
		leftovers = append(leftovers, interval.Interval{Start: candidate.Start, Length: e.Source.Start - candidate.Start})
	}
	if candidate.End() > e.Source.End() {
		leftovers = append(leftovers, interval.Interval{Start: e.Source.End(), Length: candidate.End() - e.Source.End()})
	}
	return mapped, leftovers, true
}

func (e Entry) String() string {
	return fmt.Sprintf("%v->%d", e.Source, e.Destination)
}
