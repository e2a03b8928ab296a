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

// Package curated is a helper package for the plain Go error type. Errors
// created with Errorf() remember the pattern they were created with and so
// can be identified later with the Is() and Has() functions:
//
//	e := curated.Errorf("prefs: %v", err)
//
//	if curated.Is(e, "prefs: %v") {
//		...
//	}
//
// Has() is similar but also looks for the pattern in any curated errors that
// were used as values when creating the error. Is() only looks at the
// outermost error.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. This means that a component can prefix its name to an error
// without worrying whether the error it received was already prefixed with the
// same name:
//
//	err := curated.Errorf("script: %v", curated.Errorf("script: no such function"))
//	fmt.Println(err) // script: no such function
//
// IsAny() answers whether an error was created by Errorf() at all. We treat
// curated errors as the 'expected' errors and all other errors as 'unexpected'.
package curated
