package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/kinderchess/kinder/internal/evalbuilder"
	"github.com/kinderchess/kinder/pkg/engine"
	"github.com/kinderchess/kinder/pkg/uci"
)

/*
Kinder Copyright (C) 2026 The Kinder Authors
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "Kinder"
	author = "The Kinder Authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgEval     string
	flgDepth    int
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function (pst, material)")
	flag.IntVar(&flgDepth, "depth", 64, "maximum search depth")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	var eng = engine.NewEngine(evalbuilder.Get(flgEval))
	eng.Options.MaxDepth = flgDepth

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "MaxDepth", Min: 1, Max: 64, Value: &eng.Options.MaxDepth},
			&uci.DurationOption{Name: "MoveOverhead", Min: 0, Max: 5 * time.Second, Value: &eng.Options.MoveOverhead},
			&uci.IntOption{Name: "ProgressMinNodes", Min: 0, Max: 1 << 30, Value: &eng.Options.ProgressMinNodes},
			&uci.BoolOption{Name: "ShowProgress", Value: &eng.Options.ShowProgress},
		},
	)
	protocol.Run(logger)
}
