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

// Package preferences contains the preference values used by the hardware
// emulation.
package preferences

import (
	"sync/atomic"

	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/curated"
	"github.com/vectrexia/vectrexia/prefs"
)

// DefaultCaptureRate is the number of VIA cycles per sample recorded by the
// wavwriter package. The Vectrex runs the VIA at 1.5MHz so the default
// produces a trace with a sample rate of 93750Hz.
const DefaultCaptureRate = 16

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// allow the VIA to make entries in the central log. the VIA logs timer
	// events every time they happen so this is off by default
	Logging prefs.Bool

	// number of VIA cycles for each sample in a line capture
	CaptureRate prefs.Int

	// live copy of the logging preference. the VIA checks it every time it
	// wants to log so we don't want to go through the atomic.Value in the
	// prefs.Bool type and then a type assertion
	liveLogging atomic.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. A missing prefs file is not an error.
func NewPreferences(fs afero.Fs, path string) (*Preferences, error) {
	p := &Preferences{}

	p.Logging.SetHookPost(func(v prefs.Value) error {
		p.liveLogging.Store(v.(bool))
		return nil
	})
	p.CaptureRate.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: capture rate must be positive (%d)", v)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(fs, path)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.via.logging", &p.Logging)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.via.capture.rate", &p.CaptureRate)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Logging.Set(false)
	p.CaptureRate.Set(DefaultCaptureRate)
}

// AllowLogging returns the live value of the Logging preference.
func (p *Preferences) AllowLogging() bool {
	return p.liveLogging.Load()
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
