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

package results

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestResultsSet(t *testing.T) {
	set := NewResultsSet()
	set.Add(&Result{
		Path:         "file_a",
		LineNumber:   2,
		ErrorMessage: "error_a",
	})
	set.Add(&Result{
		Path:         "file_a",
		LineNumber:   2,
		ErrorMessage: "error_a",
	})
	set.Add(&Result{
		Path:         "file_a",
		LineNumber:   2,
		ErrorMessage: "error_b",
	})
	if len(set.Results) != 2 {
		t.Fatalf("ResultsSet is not a set, expect size: 2, actual: %d", len(set.Results))
	}
}

func TestResultsSetFromList(t *testing.T) {
	list := &ResultsList{Results: []*Result{
		{Path: "file_a", LineNumber: 2, ErrorMessage: "error_a"},
		{Path: "file_a", LineNumber: 2, ErrorMessage: "error_a"},
		{Path: "file_a", LineNumber: 2, ErrorMessage: "error_b"},
	}}
	set := NewResultsSetFromList(list)
	if len(set.Results) != 2 {
		t.Fatalf("ResultsSetFromList is not a set, expect size: 2, actual: %d", len(set.Results))
	}
}

func TestSort(t *testing.T) {
	list := &ResultsList{Results: []*Result{
		{Path: "b.h", LineNumber: 1, ErrorMessage: "error_a"},
		{Path: "a.h", LineNumber: 3, ErrorMessage: "error_a"},
		{Path: "a.h", LineNumber: 1, ErrorMessage: "error_b"},
		{Path: "a.h", LineNumber: 1, ErrorMessage: "error_a"},
	}}
	Sort(list)
	expected := []struct {
		path         string
		lineNumber   int
		errorMessage string
	}{
		{"a.h", 1, "error_a"},
		{"a.h", 1, "error_b"},
		{"a.h", 3, "error_a"},
		{"b.h", 1, "error_a"},
	}
	for i, e := range expected {
		r := list.Results[i]
		if r.Path != e.path || r.LineNumber != e.lineNumber || r.ErrorMessage != e.errorMessage {
			t.Errorf("result %d: expected %v, actual %v", i, e, *r)
		}
	}
}

func TestAddID(t *testing.T) {
	list := &ResultsList{Results: []*Result{
		{Path: "a.h", LineNumber: 1, ErrorMessage: "error_a"},
		{Path: "b.h", LineNumber: 1, ErrorMessage: "error_a"},
	}}
	AddID(list)
	if list.Results[0].Id == "" || list.Results[1].Id == "" {
		t.Fatal("expected every result to have an id")
	}
	if list.Results[0].Id == list.Results[1].Id {
		t.Errorf("expected unique ids, both are %s", list.Results[0].Id)
	}
}

func TestWriteJSON(t *testing.T) {
	list := &ResultsList{Results: []*Result{
		{Path: "/src/a.h", LineNumber: 1, ErrorMessage: "error_a"},
	}}
	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteJSON(list, path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	var decoded ResultsList
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(decoded.Results) != 1 {
		t.Fatalf("expected 1 result, actual %d", len(decoded.Results))
	}
	if decoded.Results[0].Path != "/src/a.h" {
		t.Errorf("unexpected path %s", decoded.Results[0].Path)
	}
}
