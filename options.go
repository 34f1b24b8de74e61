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
	"log/slog"

	"github.com/richardwilkes/toolbox/errs"
)

// LogTo sets the logger the pipeline should use. Default discards logs.
func LogTo(logger *slog.Logger) func(*Pipeline) error {
	return func(p *Pipeline) error {
		if logger == nil {
			return errs.New("logger may not be nil")
		}
		p.logger = logger
		return nil
	}
}

// Workers sets the number of goroutines used to resolve each stage. Default
// is 1, which resolves every stage on the calling goroutine.
func Workers(count int) func(*Pipeline) error {
	return func(p *Pipeline) error {
		if count < 1 {
			return errs.New("Workers must be at least 1")
		}
		p.workers = count
		return nil
	}
}
