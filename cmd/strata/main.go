// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command strata runs a 1-D equivalent-linear site-response analysis from
// a JSON project file (spec §6) and writes its output catalog as CSV.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/arkottke/strata-sub000/inp"
	"github.com/arkottke/strata-sub000/site"
)

func main() {

	verbose := true

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.BoolVar(&verbose, "verbose", true, "report progress for every realization x motion pair")
	outPath := flag.String("out", "", "CSV output path (default: stdout)")
	flag.Parse()

	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a project filename. Ex.: profile.json")
	}
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".json"
	}

	if verbose {
		io.PfWhite("\nStrata -- 1-D equivalent-linear site response\n\n")
	}

	project, err := inp.Load(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	controller, kinds, err := project.Build()
	if err != nil {
		chk.Panic("%v", err)
	}

	if verbose {
		controller.OnProgress = func(p site.Progress) {
			status := "ok"
			if p.Err != nil {
				status = p.Err.Error()
			} else if !p.Converged {
				status = "did not converge"
			}
			io.Pf("realization %d/%d motion %d/%d: %s\n",
				p.Realization+1, p.NumRealization, p.Motion+1, p.NumMotion, status)
		}
	}

	catalog, err := controller.Run(kinds)
	if err != nil {
		chk.Panic("%v", err)
	}

	csv := catalog.WriteCSV()
	if *outPath == "" {
		io.Pf("%s", csv)
		return
	}
	if err := os.WriteFile(*outPath, []byte(csv), 0644); err != nil {
		chk.Panic("cannot write output file %q: %v", *outPath, err)
	}
	if verbose {
		io.Pf("wrote %s\n", *outPath)
	}
}
