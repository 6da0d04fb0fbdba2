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

package atomic

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write replaces the file at name with data. The data is staged in a
// temporary file in the same directory and moved into place with a rename,
// so a concurrent reader never observes a partially written file.
func Write(name string, data []byte) error {
	pattern := "tmp-*-" + filepath.Base(name)
	f, err := os.CreateTemp(filepath.Dir(name), pattern)
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %v", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to file %s: %v", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %v", tmp, err)
	}
	// CreateTemp uses 0600; results files should be world readable.
	if err := os.Chmod(tmp, 0644); err != nil {
		return fmt.Errorf("os.Chmod: %v", err)
	}
	if err := os.Rename(tmp, name); err != nil {
		return fmt.Errorf("failed to rename file %s to %s: %v", tmp, name, err)
	}
	return nil
}
