// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package remap maps sets of integer intervals through ordered stages of
// offset tables.
package remap

import (
	"github.com/richardwilkes/remap/container/interval"
	"github.com/richardwilkes/remap/container/spanlist"
	"github.com/richardwilkes/remap/mapping"
	"github.com/richardwilkes/toolbox/errs"
)

// Resolve maps the intervals through a single table. Pieces of an interval
// not covered by any entry pass through unchanged. The result is not merged
// and its order is not significant, but its total length always equals that
// of the input. Empty intervals are dropped.
func Resolve(intervals []interval.Interval, table *mapping.Table) ([]interval.Interval, error) {
	if err := interval.Validate(intervals); err != nil {
		return nil, err
	}
	queue := make([]interval.Interval, 0, len(intervals))
	for _, one := range intervals {
		if !one.IsEmpty() {
			queue = append(queue, one)
		}
	}
	if table.Len() == 0 {
		return queue, nil
	}
	resolved := make([]interval.Interval, 0, len(queue))
	for len(queue) != 0 {
		r := queue[0]
		queue = queue[1:]
		entry, err := table.Find(r)
		if err != nil {
			return nil, errs.Wrap(err)
		}
		mapped, leftovers, ok := entry.Shrink(r)
		if !ok {
			resolved = append(resolved, r)
			continue
		}
		resolved = append(resolved, mapped)
		queue = append(queue, leftovers...)
	}
	return resolved, nil
}

// Merge returns the union of the intervals as maximal disjoint intervals,
// sorted by start.
func Merge(intervals []interval.Interval) []interval.Interval {
	return spanlist.Merge(intervals)
}

// Lowest returns the smallest start among the intervals. The second return is
// false if there are no non-empty intervals.
func Lowest(intervals []interval.Interval) (int64, bool) {
	var lowest int64
	found := false
	for _, one := range intervals {
		if !one.IsEmpty() && (!found || one.Start < lowest) {
			lowest = one.Start
			found = true
		}
	}
	return lowest, found
}
