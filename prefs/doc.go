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

// Package prefs facilitates the storage of preferential values in the
// emulation. Preference values are typed (Bool, Int and String) and can have
// hooks attached that are called before and after the value changes. Hooks
// are useful for keeping a "live" copy of a value up to date.
//
// Preference values are attached to a Disk with a key. A Disk saves and
// loads the values it knows about to a file in the following format:
//
//	key :: value
//
// More than one Disk can share the same file. A Disk will only load and
// change the entries it knows about and will preserve all other entries in
// the file when saving.
//
// Values can be overridden for the duration of a session with the command
// line stack. See PushCommandLineStack() for details.
package prefs
