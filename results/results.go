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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"naive.systems/headerguard/atomic"
)

// Result is a single finding for one header file.
type Result struct {
	Id           string `json:"id,omitempty"`
	Path         string `json:"path"`
	LineNumber   int    `json:"line_number"`
	ErrorMessage string `json:"error_message"`
	Severity     int    `json:"severity,omitempty"`
}

type ResultsList struct {
	Results []*Result `json:"results"`
}

// Sort orders results by path, then line number, then error message.
func Sort(list *ResultsList) {
	slices.SortStableFunc(list.Results, func(x, y *Result) bool {
		if x.Path != y.Path {
			return x.Path < y.Path
		}
		if x.LineNumber != y.LineNumber {
			return x.LineNumber < y.LineNumber
		}
		return x.ErrorMessage < y.ErrorMessage
	})
}

// AddID assigns a fresh UUID to every result before the list is written out.
func AddID(list *ResultsList) {
	for _, result := range list.Results {
		id, err := uuid.NewRandom()
		if err != nil {
			glog.Warningf("uuid.NewRandom: %v", err)
			continue
		}
		result.Id = id.String()
	}
}

// Print writes every result to stdout, one per line.
func Print(list *ResultsList) {
	for _, result := range list.Results {
		fmt.Printf("%s:%d: %s\n", result.Path, result.LineNumber, result.ErrorMessage)
	}
}

// WriteJSON writes the list to resultsPath as indented JSON.
func WriteJSON(list *ResultsList, resultsPath string) error {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("enc.Encode: %v", err)
	}
	if err := atomic.Write(resultsPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %v", resultsPath, err)
	}
	return nil
}
