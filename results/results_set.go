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

type resultKey struct {
	path         string
	lineNumber   int
	errorMessage string
}

// ResultsSet is an alternative to ResultsList that drops duplicated results
// on Add(). It preserves the adding order of the remaining results.
type ResultsSet struct {
	ResultsList
	stored map[resultKey]struct{}
}

func NewResultsSet() *ResultsSet {
	return &ResultsSet{stored: make(map[resultKey]struct{})}
}

func NewResultsSetFromList(list *ResultsList) *ResultsSet {
	set := NewResultsSet()
	set.AddList(list)
	return set
}

func (rs *ResultsSet) Add(r *Result) {
	key := resultKey{
		path:         r.Path,
		lineNumber:   r.LineNumber,
		errorMessage: r.ErrorMessage,
	}
	if _, reported := rs.stored[key]; reported {
		return
	}
	rs.stored[key] = struct{}{}
	rs.Results = append(rs.Results, r)
}

func (rs *ResultsSet) AddList(list *ResultsList) {
	for _, r := range list.Results {
		rs.Add(r)
	}
}
