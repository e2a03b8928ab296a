// This file is part of Vectrexia.
//
// Vectrexia is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vectrexia is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vectrexia.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// separates key and value in the prefs file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	DiskError   = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	fs      afero.Fs
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist until Load() is called.
func NewDisk(fs afero.Fs, path string) (*Disk, error) {
	if fs == nil {
		return nil, curated.Errorf(DiskError, "no filesystem")
	}
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path")
	}
	return &Disk{
		fs:      fs,
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the entry in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) || strings.Contains(key, "\n") {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key (%q)", key))
	}
	if p == nil {
		return curated.Errorf(DiskError, fmt.Sprintf("nil value for key (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// sorted list of keys known to this Disk.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the prefs file into a map of raw strings. the bool return value is
// false if the file does not exist.
func (dsk *Disk) read() (map[string]string, bool, error) {
	raw := make(map[string]string)

	f, err := dsk.fs.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return raw, false, nil
		}
		return nil, false, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if err := scanner.Err(); err != nil {
			return nil, false, curated.Errorf(DiskError, err)
		}
		return nil, false, curated.Errorf(DiskError, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		raw[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, false, curated.Errorf(DiskError, err)
	}

	return raw, true, nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk are preserved.
func (dsk *Disk) Save() (rerr error) {
	raw, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		raw[k] = v.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := dsk.fs.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, raw[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over the values in the file.
//
// If the prefs file does not exist a NoPrefsFile error is returned. Command
// line values are still applied in that case.
func (dsk *Disk) Load() error {
	raw, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		if ok, cl := GetCommandLinePref(k); ok {
			if err := v.Set(cl); err != nil {
				return curated.Errorf(DiskError, err)
			}
			continue
		}
		if s, ok := raw[k]; ok {
			if err := v.Set(s); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	if !exists {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// DoesNotHaveEntry returns true if the prefs file does not contain the key.
// Also returns true if the file does not exist.
func (dsk *Disk) DoesNotHaveEntry(key string) (bool, error) {
	raw, _, err := dsk.read()
	if err != nil {
		return false, err
	}
	_, ok := raw[key]
	return !ok, nil
}
