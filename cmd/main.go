/*
NaiveSystems HeaderGuard - A checker for include-once guards in C/C++ headers
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"naive.systems/headerguard/basic"
	"naive.systems/headerguard/i18n"
	"naive.systems/headerguard/results"
	"naive.systems/headerguard/scanner"
	"naive.systems/headerguard/stats"
)

func main() {
	rootdir := flag.String("rootdir", "", "Directory to check header files in, defaults to the current working directory")
	var excludes scanner.ArrayFlags
	flag.Var(&excludes, "exclude", "Path of a file to exclude from checking, relative to rootdir; may be repeated")
	var ignoreDirPatterns scanner.ArrayFlags
	flag.Var(&ignoreDirPatterns, "ignore_dir", "Shell file name pattern to a directory that will be ignored")
	resultsDir := flag.String("results_dir", "", "Absolute path to the directory of results files; empty to skip writing results")
	checkProgress := flag.Bool("check_progress", false, "Show the checking progress")
	showResults := flag.Bool("show_results", false, "Show results after the scan")
	showLineNumber := flag.Bool("show_line_number", false, "Show line count information")
	lang := flag.String("lang", "en", "Language of progress messages. Support en and zh")
	flag.Parse()
	defer glog.Flush()

	printer := i18n.GetPrinter(*lang)

	dir := *rootdir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			glog.Fatalf("os.Getwd: %v", err)
		}
	}
	dir, err := scanner.ResolveRootDir(dir)
	if err != nil {
		glog.Fatalf("scanner.ResolveRootDir: %v", err)
	}
	exclusions := scanner.BuildExclusionSet(dir, excludes)

	if *resultsDir != "" {
		if !filepath.IsAbs(*resultsDir) {
			glog.Fatal("results_dir must be an absolute path")
		}
		if err := os.MkdirAll(*resultsDir, os.ModePerm); err != nil {
			glog.Fatalf("failed to create results dir: %v", err)
		}
	}

	start := time.Now()
	if *checkProgress {
		basic.PrintfWithTimeStamp(printer.Sprintf("Start checking header files in %s", dir))
	}
	if *resultsDir != "" {
		stats.WriteProgress(*resultsDir, stats.Walk, "0%", start)
	}

	headers, err := scanner.ListHeaderFiles(dir, exclusions, ignoreDirPatterns)
	if err != nil {
		glog.Fatalf("scanner.ListHeaderFiles: %v", err)
	}
	glog.Infof("found %d candidate header files in %s", len(headers), dir)

	if *showLineNumber {
		lines, err := stats.CountHeaderLines(headers)
		if err != nil {
			glog.Errorf("stats.CountHeaderLines: %v", err)
		} else {
			glog.Infof("checking %d lines in %d header files", lines, len(headers))
			if *resultsDir != "" {
				stats.WriteLOC(*resultsDir, lines)
			}
		}
	}

	if *resultsDir != "" {
		stats.WriteProgress(*resultsDir, stats.Check, "0%", start)
	}
	allResults, err := scanner.CheckHeaders(headers, *resultsDir, start)
	if err != nil {
		glog.Fatalf("scanner.CheckHeaders: %v", err)
	}

	results.Sort(allResults)
	results.AddID(allResults)

	if *resultsDir != "" {
		resultsPath := filepath.Join(*resultsDir, "results.json")
		if err := results.WriteJSON(allResults, resultsPath); err != nil {
			glog.Errorf("results.WriteJSON: %v", err)
		}
		stats.WriteProgress(*resultsDir, stats.End, "100%", start)
	}
	if *showResults {
		results.Print(allResults)
	}
	if *checkProgress {
		timeUsed := basic.FormatTimeDuration(time.Since(start))
		basic.PrintfWithTimeStamp(printer.Sprintf("Header guard check completed [%s]", timeUsed))
	}

	glog.Flush()
	if len(allResults.Results) > 0 {
		os.Exit(1)
	}
}
