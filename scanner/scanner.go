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

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"

	"naive.systems/headerguard/basic"
	"naive.systems/headerguard/headercheck"
	"naive.systems/headerguard/results"
	"naive.systems/headerguard/stats"
)

type ArrayFlags []string

func (i *ArrayFlags) String() string {
	return "array flags"
}

func (i *ArrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// HeaderSuffix selects the candidate files of a scan.
const HeaderSuffix = ".h"

// ResolveRootDir turns rootdir into a cleaned absolute path.
func ResolveRootDir(rootdir string) (string, error) {
	abs, err := filepath.Abs(rootdir)
	if err != nil {
		return "", fmt.Errorf("filepath.Abs: %v", err)
	}
	return abs, nil
}

// BuildExclusionSet resolves every exclude path against the already resolved
// rootdir into a normalized absolute path. Matching during the walk is exact
// path equality, not glob or prefix.
func BuildExclusionSet(rootdir string, excludes []string) map[string]bool {
	exclusions := make(map[string]bool, len(excludes))
	for _, path := range excludes {
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootdir, path)
		}
		exclusions[filepath.Clean(path)] = true
	}
	return exclusions
}

func MatchIgnoreDirPatterns(ignoreDirPatterns []string, filePath string) (bool, error) {
	matched := false
	var err error
	for _, ignoreDirPattern := range ignoreDirPatterns {
		matched, err = doublestar.Match(ignoreDirPattern, filePath)
		if err != nil {
			return matched, fmt.Errorf("malformed ignore_dir pattern %s", ignoreDirPattern)
		}
		if matched {
			glog.Infof("Header file %s ignored due to pattern %s", filePath, ignoreDirPattern)
			break
		}
	}
	return matched, nil
}

// ListHeaderFiles recursively enumerates the regular files under rootdir
// whose name ends in HeaderSuffix, skipping excluded and ignored paths.
// The returned paths are absolute and in lexical walk order.
func ListHeaderFiles(rootdir string, exclusions map[string]bool, ignoreDirPatterns []string) ([]string, error) {
	var headers []string
	err := filepath.Walk(rootdir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(info.Name(), HeaderSuffix) {
			return nil
		}
		fullPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if exclusions[fullPath] {
			glog.Infof("Header file %s skipped due to exclusion", fullPath)
			return nil
		}
		matched, err := MatchIgnoreDirPatterns(ignoreDirPatterns, fullPath)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
		headers = append(headers, fullPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk: %v", err)
	}
	return headers, nil
}

// CheckHeaders runs the guard check on every listed header, printing one
// diagnostic line per failing file to stderr. The scan does not stop at the
// first failure; every remaining header is still checked. When resultsDir is
// not empty, checking progress is written there after every file.
func CheckHeaders(headers []string, resultsDir string, startedAt time.Time) (*results.ResultsList, error) {
	resultsSet := results.NewResultsSet()
	for i, path := range headers {
		passed, err := headercheck.CheckForOnlyDefOnce(path)
		if err != nil {
			glog.Errorf("failed to read header file: %s, error: %v", path, err)
			return nil, err
		}
		if !passed {
			resultsSet.Add(&results.Result{
				Path:         path,
				LineNumber:   1,
				ErrorMessage: headercheck.NoGuardMessage,
			})
			fmt.Fprintln(os.Stderr, headercheck.FailureLine(path))
		}
		if resultsDir != "" {
			percent := basic.GetPercentString(i+1, len(headers))
			stats.WriteProgress(resultsDir, stats.Check, percent, startedAt)
		}
	}
	return &resultsSet.ResultsList, nil
}

// CheckHeadersInDir discovers the candidate headers under rootdir and checks
// them. It returns the collected failures and whether the scan passed.
func CheckHeadersInDir(rootdir string, exclusions map[string]bool, ignoreDirPatterns []string) (*results.ResultsList, bool, error) {
	headers, err := ListHeaderFiles(rootdir, exclusions, ignoreDirPatterns)
	if err != nil {
		return nil, false, err
	}
	resultsList, err := CheckHeaders(headers, "", time.Now())
	if err != nil {
		return nil, false, err
	}
	return resultsList, len(resultsList.Results) == 0, nil
}
