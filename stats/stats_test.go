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
	"testing"
	"time"
)

func TestWriteLOC(t *testing.T) {
	resultsDir := t.TempDir()
	WriteLOC(resultsDir, 42)
	content, err := os.ReadFile(filepath.Join(resultsDir, "loc.hg_metadata"))
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	if string(content) != "42" {
		t.Errorf("expected 42, actual %q", content)
	}
}

func TestWriteProgress(t *testing.T) {
	resultsDir := t.TempDir()
	startedAt := time.Now()
	WriteProgress(resultsDir, Check, "50%", startedAt)
	content, err := os.ReadFile(filepath.Join(resultsDir, "progress.hg_metadata"))
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	var progress Progress
	if err := json.Unmarshal(content, &progress); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if progress.StageID != Check || progress.DoneRatio != "50%" {
		t.Errorf("unexpected progress %+v", progress)
	}
}

func TestWriteProgressMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no_such_dir")
	// must not create the directory or crash
	WriteProgress(missing, Walk, "0%", time.Now())
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Errorf("expected %s to stay missing", missing)
	}
}

func TestCountHeaderLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.h")
	content := "#pragma once\n\nint f(void);\nint g(void);\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	lines, err := CountHeaderLines([]string{path})
	if err != nil {
		t.Fatalf("CountHeaderLines: %v", err)
	}
	// blank lines are not code lines
	if lines != 3 {
		t.Errorf("expected 3 code lines, actual %d", lines)
	}
}
