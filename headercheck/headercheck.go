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

package headercheck

import (
	"os"
	"strings"
)

// NoGuardMessage is the error message recorded for a header without a guard.
const NoGuardMessage = `Header file found without "#pragma once" or "#ifndef" wrapper`

const failurePrefix = "TEST FAIL - " + NoGuardMessage + ": "

// FailureLine is the diagnostic line reported for a header without a guard.
func FailureLine(path string) string {
	return failurePrefix + path
}

// CheckForOnlyDefOnce reports whether the header at path contains a define
// only-once guard: either a `#pragma once` line, or an `#ifndef NAME` whose
// matching `#define NAME` and `#endif /*  NAME */` both appear somewhere in
// the file. A read failure is returned to the caller and aborts the scan.
//
// Only the first `#ifndef` line decides, with one exception: `#ifndef WIN32`
// is a platform conditional, not a guard, and scanning continues past it.
// A later, well-formed guard does not rescue a file whose first `#ifndef`
// has no matching pair; existing pass/fail results depend on this.
func CheckForOnlyDefOnce(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	source := string(content)
	// SplitAfter keeps the line terminators, so a final `#pragma once` with
	// no trailing newline does not count as a guard.
	for _, line := range strings.SplitAfter(source, "\n") {
		if line == "#pragma once\n" {
			return true, nil
		}
		if !strings.HasPrefix(line, "#ifndef") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			// No macro name on the line. Not a guard candidate.
			continue
		}
		macroName := tokens[1]
		if macroName == "WIN32" {
			continue
		}
		found := strings.Contains(source, "#define "+macroName) &&
			strings.Contains(source, "#endif /*  "+macroName+" */")
		return found, nil
	}
	return false, nil
}
