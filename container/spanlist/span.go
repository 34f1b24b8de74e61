// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package spanlist

import (
	"cmp"
	"slices"

	"github.com/richardwilkes/remap/container/interval"
)

// SpanList holds a sorted list of disjoint, non-abutting intervals.
type SpanList struct {
	Spans []interval.Interval
}

// Insert an interval into the list, coalescing it with any spans it overlaps
// or abuts. Returns true if the interval overlapped an existing span within
// the list. Empty intervals are ignored. Each call is linear in the size of
// the list; use InsertAll for bulk additions.
func (sl *SpanList) Insert(iv interval.Interval) bool {
	if iv.IsEmpty() {
		return false
	}
	for i, one := range sl.Spans {
		// Before
		if iv.End() < one.Start {
			sl.Spans = slices.Insert(sl.Spans, i, iv)
			return false
		}
		// Overlap or abut
		if iv.Start <= one.End() {
			hadOverlap := iv.Overlaps(one)
			sl.Spans[i] = cover(one, iv)
			j := i + 1
			for j < len(sl.Spans) && (sl.Spans[i].Overlaps(sl.Spans[j]) || sl.Spans[i].Abuts(sl.Spans[j])) {
				hadOverlap = hadOverlap || iv.Overlaps(sl.Spans[j])
				sl.Spans[i] = cover(sl.Spans[i], sl.Spans[j])
				j++
			}
			sl.Spans = slices.Delete(sl.Spans, i+1, j)
			return hadOverlap
		}
	}
	sl.Spans = append(sl.Spans, iv)
	return false
}

// InsertAll adds the intervals to the list with a single sort and sweep.
func (sl *SpanList) InsertAll(list []interval.Interval) {
	if len(list) == 0 {
		return
	}
	combined := make([]interval.Interval, 0, len(sl.Spans)+len(list))
	combined = append(combined, sl.Spans...)
	sl.Spans = Merge(append(combined, list...))
}

// Merge returns the union of the intervals as a list of maximal disjoint
// intervals sorted by start. Overlapping and abutting intervals are coalesced
// and empty intervals are dropped. The input is not modified.
func Merge(list []interval.Interval) []interval.Interval {
	sorted := make([]interval.Interval, 0, len(list))
	for _, one := range list {
		if !one.IsEmpty() {
			sorted = append(sorted, one)
		}
	}
	if len(sorted) == 0 {
		return sorted
	}
	slices.SortFunc(sorted, func(a, b interval.Interval) int { return cmp.Compare(a.Start, b.Start) })
	merged := make([]interval.Interval, 0, len(sorted))
	running := sorted[0]
	for _, one := range sorted[1:] {
		if running.Overlaps(one) || running.Abuts(one) {
			running = cover(running, one)
			continue
		}
		merged = append(merged, running)
		running = one
	}
	return append(merged, running)
}

func cover(a, b interval.Interval) interval.Interval {
	start := min(a.Start, b.Start)
	return interval.Interval{Start: start, Length: max(a.End(), b.End()) - start}
}
