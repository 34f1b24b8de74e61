// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package remap

import (
	"io"
	"log/slog"
	"slices"

	"github.com/richardwilkes/remap/container/interval"
	"github.com/richardwilkes/remap/container/spanlist"
	"github.com/richardwilkes/remap/mapping"
	"github.com/richardwilkes/toolbox/errs"
	"golang.org/x/sync/errgroup"
)

// Pipeline holds an ordered sequence of mapping stages. A Pipeline is never
// modified after creation and may be run any number of times, including
// concurrently.
type Pipeline struct {
	stages  []*mapping.Table
	logger  *slog.Logger
	workers int
}

// New creates a new pipeline that applies the stages in order.
func New(stages []*mapping.Table, options ...func(*Pipeline) error) (*Pipeline, error) {
	for i, one := range stages {
		if one == nil {
			return nil, errs.Newf("stage %d may not be nil", i)
		}
	}
	p := &Pipeline{
		stages:  slices.Clone(stages),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: 1,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run is a convenience for creating a single-worker pipeline from the stages
// and running the intervals through it.
func Run(initial []interval.Interval, stages []*mapping.Table) ([]interval.Interval, error) {
	p, err := New(stages)
	if err != nil {
		return nil, err
	}
	return p.Run(initial)
}

// Stages returns the number of stages.
func (p *Pipeline) Stages() int {
	return len(p.stages)
}

// Run the intervals through every stage. The result is the set of maximal
// disjoint intervals, sorted by start, covered by the mapped input.
func (p *Pipeline) Run(initial []interval.Interval) ([]interval.Interval, error) {
	if err := interval.Validate(initial); err != nil {
		return nil, err
	}
	result := Merge(initial)
	for i, table := range p.stages {
		var fragments int
		var err error
		in := len(result)
		if p.workers > 1 && len(result) > 1 {
			result, fragments, err = p.resolveConcurrently(result, table)
		} else {
			var resolved []interval.Interval
			if resolved, err = Resolve(result, table); err == nil {
				fragments = len(resolved)
				result = Merge(resolved)
			}
		}
		if err != nil {
			return nil, errs.NewWithCausef(err, "stage %d (%s) failed", i, table.Name())
		}
		p.logger.Debug("stage", "index", i, "name", table.Name(), "in", in, "fragments", fragments, "out", len(result),
			"covered", interval.TotalLength(result))
	}
	return result, nil
}

func (p *Pipeline) resolveConcurrently(list []interval.Interval, table *mapping.Table) (merged []interval.Interval, fragments int, err error) {
	n := min(p.workers, len(list))
	parts := make([][]interval.Interval, n)
	var g errgroup.Group
	for w := range n {
		share := list[w*len(list)/n : (w+1)*len(list)/n]
		g.Go(func() error {
			resolved, rerr := Resolve(share, table)
			parts[w] = resolved
			return rerr
		})
	}
	if err = g.Wait(); err != nil {
		return nil, 0, err
	}
	var sl spanlist.SpanList
	combined := make([]interval.Interval, 0, len(list))
	for _, part := range parts {
		fragments += len(part)
		combined = append(combined, part...)
	}
	sl.Spans = make([]interval.Interval, 0)
	sl.InsertAll(combined)
	return sl.Spans, fragments, nil
}
