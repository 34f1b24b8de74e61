// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package almanac

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/richardwilkes/toolbox/errs"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// NewFileFromBytes parses a text almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
func NewFileFromBytes(data []byte) (*File, error) {
	var f File
	var stage *Stage
	haveSeeds := false
	s := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "":
			stage = nil
		case strings.HasPrefix(line, seedsPrefix):
			if haveSeeds {
				return nil, errs.Newf("line %d: duplicate seeds", lineNum)
			}
			seeds, err := parseNumbers(line[len(seedsPrefix):])
			if err != nil {
				return nil, errs.NewWithCausef(err, "line %d", lineNum)
			}
			f.Seeds = seeds
			haveSeeds = true
		case strings.HasSuffix(line, mapSuffix):
			f.Stages = append(f.Stages, Stage{Name: strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))})
			stage = &f.Stages[len(f.Stages)-1]
		default:
			if stage == nil {
				return nil, errs.Newf("line %d: entry outside of a map", lineNum)
			}
			values, err := parseNumbers(line)
			if err != nil {
				return nil, errs.NewWithCausef(err, "line %d", lineNum)
			}
			if len(values) != 3 {
				return nil, errs.Newf("line %d: expected 3 values, found %d", lineNum, len(values))
			}
			stage.Entries = append(stage.Entries, Entry{
				Destination: values[0],
				Source:      values[1],
				Length:      values[2],
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, errs.Wrap(err)
	}
	if !haveSeeds {
		return nil, errs.New("missing seeds")
	}
	return &f, nil
}

func parseNumbers(text string) ([]int64, error) {
	fields := strings.Fields(text)
	values := make([]int64, len(fields))
	for i, one := range fields {
		v, err := strconv.ParseInt(one, 10, 64)
		if err != nil {
			return nil, errs.Wrap(err)
		}
		values[i] = v
	}
	return values, nil
}
