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
	"cmp"
	"errors"
	"slices"

	"github.com/richardwilkes/remap/container/interval"
	"github.com/richardwilkes/toolbox/errs"
)

var (
	// ErrInvalidTable is the cause of errors produced when a table's source
	// intervals overlap or have negative lengths.
	ErrInvalidTable = errors.New("invalid mapping table")
	// ErrEmptyTable is the cause of errors produced when searching a table
	// that has no entries.
	ErrEmptyTable = errors.New("empty mapping table")
)

// Table holds the entries for one stage, sorted by source start. A Table is
// never modified after creation.
type Table struct {
	name    string
	entries []Entry
}

// NewTable creates a new table from the entries. Entries with empty source
// intervals are discarded, since they can never map anything.
func NewTable(name string, entries []Entry) (*Table, error) {
	t := &Table{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
	}
	for _, one := range entries {
		if one.Source.Length < 0 {
			return nil, errs.NewWithCausef(ErrInvalidTable, "%s: entry %v has negative length", name, one)
		}
		if one.Source.Length != 0 {
			t.entries = append(t.entries, one)
		}
	}
	slices.SortFunc(t.entries, func(a, b Entry) int { return cmp.Compare(a.Source.Start, b.Source.Start) })
	for i := 1; i < len(t.entries); i++ {
		if prev := t.entries[i-1]; prev.Source.Overlaps(t.entries[i].Source) {
			return nil, errs.NewWithCausef(ErrInvalidTable, "%s: entry %v overlaps entry %v", name, prev, t.entries[i])
		}
	}
	return t, nil
}

// Name returns the name of the table.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries, sorted by source start.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Find returns the last entry whose source interval starts before the end of
// the query. That is the only entry that could overlap the end of the query;
// when it does not overlap the query at all, no entry does. The caller is
// responsible for checking for actual overlap.
func (t *Table) Find(query interval.Interval) (Entry, error) {
	if len(t.entries) == 0 {
		return Entry{}, errs.NewWithCausef(ErrEmptyTable, "%s: unable to search for %v", t.name, query)
	}
	left := 0
	right := len(t.entries)
	for right-left > 1 {
		middle := (left + right) >> 1
		if query.End() <= t.entries[middle].Source.Start {
			right = middle
		} else {
			left = middle
		}
	}
	return t.entries[left], nil
}

// Map a single position through the table. Positions not covered by any entry
// map to themselves.
func (t *Table) Map(v int64) int64 {
	e, err := t.Find(interval.Interval{Start: v, Length: 1})
	if err != nil {
		return v
	}
	if mapped, ok := e.Apply(v); ok {
		return mapped
	}
	return v
}
