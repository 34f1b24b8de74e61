// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

// Package almanac loads the seeds and mapping stages that feed a pipeline.
package almanac

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/richardwilkes/remap/container/interval"
	"github.com/richardwilkes/remap/mapping"
	"github.com/richardwilkes/toolbox/errs"
)

// Extensions recognized by NewFileFromPath. Anything else is read as text.
const (
	BencodeExt = ".bencode"
	YAMLExt    = ".yaml"
	YMLExt     = ".yml"
)

// Entry holds one "destination source length" line of a stage.
type Entry struct {
	Destination int64 `yaml:"destination" bencode:"destination"`
	Source      int64 `yaml:"source" bencode:"source"`
	Length      int64 `yaml:"length" bencode:"length"`
}

// Stage holds the entries of one named map.
type Stage struct {
	Name    string  `yaml:"name" bencode:"name"`
	Entries []Entry `yaml:"entries" bencode:"entries"`
}

// File holds the contents of an almanac.
type File struct {
	Path   string  `yaml:"-" bencode:"-"`
	Seeds  []int64 `yaml:"seeds" bencode:"seeds"`
	Stages []Stage `yaml:"stages" bencode:"stages"`
}

// NewFileFromPath loads an almanac, choosing the decoder from the file's
// extension.
func NewFileFromPath(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	var data []byte
	data, err = io.ReadAll(file)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, errs.Wrap(err)
	}
	var f *File
	switch strings.ToLower(filepath.Ext(path)) {
	case YAMLExt, YMLExt:
		f, err = NewFileFromYAML(data)
	case BencodeExt:
		f, err = NewFileFromBencode(data)
	default:
		f, err = NewFileFromBytes(data)
	}
	if err != nil {
		return nil, errs.NewWithCausef(err, "%s", path)
	}
	f.Path = path
	return f, nil
}

// NewFileFromReader loads a text almanac.
func NewFileFromReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return NewFileFromBytes(data)
}

// Points returns each seed as an interval of length 1.
func (f *File) Points() []interval.Interval {
	list := make([]interval.Interval, len(f.Seeds))
	for i, seed := range f.Seeds {
		list[i] = interval.Interval{Start: seed, Length: 1}
	}
	return list
}

// Ranges returns the seeds read as consecutive (start, length) pairs.
func (f *File) Ranges() ([]interval.Interval, error) {
	if len(f.Seeds)%2 != 0 {
		return nil, errs.Newf("an even number of seeds is required to form ranges, have %d", len(f.Seeds))
	}
	list := make([]interval.Interval, 0, len(f.Seeds)/2)
	for i := 0; i < len(f.Seeds); i += 2 {
		one, err := interval.New(f.Seeds[i], f.Seeds[i+1])
		if err != nil {
			return nil, err
		}
		list = append(list, one)
	}
	return list, nil
}

// Tables builds the mapping tables for the stages, in order.
func (f *File) Tables() ([]*mapping.Table, error) {
	tables := make([]*mapping.Table, len(f.Stages))
	for i, stage := range f.Stages {
		entries := make([]mapping.Entry, len(stage.Entries))
		for j, one := range stage.Entries {
			entries[j] = mapping.Entry{
				Destination: one.Destination,
				Source:      interval.Interval{Start: one.Source, Length: one.Length},
			}
		}
		table, err := mapping.NewTable(stage.Name, entries)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}
	return tables, nil
}
