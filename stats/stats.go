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

package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/hhatto/gocloc"

	"naive.systems/headerguard/atomic"
)

// scan stages
const (
	Walk int = iota // header discovery
	Check           // guard check
	End
)

type Progress struct {
	StageID   int       `json:"stage_id"`
	DoneRatio string    `json:"done_ratio"`
	StartedAt time.Time `json:"started_at"`
}

func WriteLOC(resultsDir string, linesCounter int) {
	path := filepath.Join(resultsDir, "loc.hg_metadata")
	err := atomic.Write(path, []byte(strconv.Itoa(linesCounter)))
	if err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

func WriteProgress(resultsDir string, stageID int, doneRatio string, startedAt time.Time) {
	// skip writing it if resultsDir does not exist
	_, err := os.Stat(resultsDir)
	if os.IsNotExist(err) {
		glog.Warningf("results dir %s does not exist", resultsDir)
		return
	}
	path := filepath.Join(resultsDir, "progress.hg_metadata")
	progress, err := json.Marshal(Progress{StageID: stageID, DoneRatio: doneRatio, StartedAt: startedAt})
	if err != nil {
		glog.Errorf("failed to marshal json stageID %d and doneRatio %s: %v", stageID, doneRatio, err)
		return
	}
	err = atomic.Write(path, progress)
	if err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

// CountHeaderLines counts the code lines of the listed header files.
func CountHeaderLines(headers []string) (int, error) {
	clocOpts := gocloc.NewClocOptions()
	languages := gocloc.NewDefinedLanguages()
	if _, exists := languages.Langs["C Header"]; exists {
		clocOpts.IncludeLangs["C Header"] = struct{}{}
	}
	processor := gocloc.NewProcessor(languages, clocOpts)
	result, err := processor.Analyze(headers)
	if err != nil {
		glog.Errorf("gocloc fail: %v", err)
		return 0, err
	}
	sum := 0
	for _, file := range result.Files {
		sum += int(file.Code)
	}
	return sum, nil
}
