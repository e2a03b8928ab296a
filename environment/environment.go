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

// Package environment provides the context for an emulation. Components that
// need preference values or that want to log do so through the Environment.
package environment

import (
	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/hardware/preferences"
	"github.com/vectrexia/vectrexia/prefs"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly
// useful when using more than one emulation.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created using the default prefs file in the supplied filesystem. Providing
// a non-nil value allows the preferences of more than one emulation to be
// shared.
func NewEnvironment(label Label, fs afero.Fs, prefsValues *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefsValues == nil {
		var err error
		prefsValues, err = preferences.NewPreferences(fs, prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefsValues

	return env, nil
}

// AllowLogging implements the logger.Permission interface. A nil environment
// never allows logging.
func (env *Environment) AllowLogging() bool {
	if env == nil || env.Prefs == nil {
		return false
	}
	return env.Prefs.AllowLogging()
}

// Normalise ensures the environment is in a known default state. Useful for
// tests where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
