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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions are fatal and should be used when the value being
// tested is required by later parts of the test.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful if it is true and an error is successful if it
// is nil. An untyped nil is always a success, because of how errors usually
// work.
//
// The writer types (CompareWriter and RingWriter) implement the
// io.Writer interface and are used to capture output for comparison.
package test
