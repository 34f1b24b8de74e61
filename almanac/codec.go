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
	"os"

	"github.com/richardwilkes/toolbox/errs"
	"github.com/zeebo/bencode"
	"gopkg.in/yaml.v3"
)

// NewFileFromYAML parses a YAML almanac.
func NewFileFromYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err)
	}
	return &f, nil
}

// NewFileFromBencode decodes an almanac snapshot.
func NewFileFromBencode(data []byte) (*File, error) {
	var f File
	if err := bencode.DecodeBytes(data, &f); err != nil {
		return nil, errs.Wrap(err)
	}
	return &f, nil
}

// YAML returns the almanac encoded as YAML.
func (f *File) YAML() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return data, nil
}

// Bencode returns the almanac encoded as a snapshot.
func (f *File) Bencode() ([]byte, error) {
	data, err := bencode.EncodeBytes(f)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return data, nil
}

// WriteBencode writes the almanac snapshot to the path.
func (f *File) WriteBencode(path string) error {
	data, err := f.Bencode()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o640); err != nil {
		return errs.Wrap(err)
	}
	return nil
}
