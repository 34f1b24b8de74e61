// Copyright (c) 2025-2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/richardwilkes/remap"
	"github.com/richardwilkes/remap/almanac"
	"github.com/richardwilkes/remap/container/interval"
	"github.com/richardwilkes/toolbox/cmdline"
	"github.com/richardwilkes/toolbox/errs"
	"github.com/richardwilkes/toolbox/fatal"
	"github.com/richardwilkes/toolbox/log/tracelog"
)

func main() {
	cmdline.AppName = "Remap"
	cmdline.AppCmdName = "remap"
	cmdline.License = "Mozilla Public License, version 2.0"
	cmdline.CopyrightStartYear = "2025"
	cmdline.CopyrightHolder = "Richard A. Wilkes"
	cmdline.AppIdentifier = "com.trollworks.remap"

	workers := 1
	var compileTo string
	var debug, dump bool

	var logLevel slog.LevelVar
	slog.SetDefault(slog.New(tracelog.New(&tracelog.Config{
		Level: &logLevel,
		Sink:  log.Default().Writer(),
	})))

	cl := cmdline.New(true)
	cl.NewGeneralOption(&workers).SetName("workers").SetSingle('w').SetUsage("Number of goroutines used to resolve each stage")
	cl.NewGeneralOption(&compileTo).SetName("compile").SetSingle('c').SetUsage("Write a bencode snapshot of the almanac to this path and exit")
	cl.NewGeneralOption(&dump).SetName("dump").SetUsage("Dump the final intervals at debug level")
	cl.NewGeneralOption(&debug).SetName("debug").SetUsage("Enable debug logging")

	files := cl.Parse(os.Args[1:])
	if len(files) == 0 {
		fatal.WithErr(errs.New("No almanac specified"))
	}

	if debug || dump {
		logLevel.Set(slog.LevelDebug)
	}

	f, err := almanac.NewFileFromPath(files[0])
	fatal.IfErr(err)

	if compileTo != "" {
		fatal.IfErr(f.WriteBencode(compileTo))
		slog.Info("compiled", "from", f.Path, "to", compileTo, "stages", len(f.Stages))
		return
	}

	tables, err := f.Tables()
	fatal.IfErr(err)

	var p *remap.Pipeline
	p, err = remap.New(tables, remap.Workers(workers), remap.LogTo(slog.Default()))
	fatal.IfErr(err)

	report("Points", p, f.Points(), dump)
	ranges, err := f.Ranges()
	if err != nil {
		slog.Warn("skipping ranges", "error", err)
		return
	}
	report("Ranges", p, ranges, dump)
}

func report(label string, p *remap.Pipeline, initial []interval.Interval, dump bool) {
	started := time.Now()
	result, err := p.Run(initial)
	fatal.IfErr(err)
	slog.Debug("run", "label", label, "intervals", len(result), "covered", interval.TotalLength(result),
		"elapsed", time.Since(started))
	if dump {
		slog.Debug(label + "\n" + spew.Sdump(result))
	}
	if lowest, ok := remap.Lowest(result); ok {
		fmt.Printf("%s: %d\n", label, lowest)
	} else {
		fmt.Printf("%s: none\n", label)
	}
}
