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

// Package logger is the central log for the emulation. Log entries are made
// with the package level Log() and Logf() functions, which take a Permission
// argument. The Permission decides whether the entry is made at all, which
// allows a component to log freely while leaving the decision to whoever
// created it. The Allow value can be used when an entry should always be
// made.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The log has a maximum number of entries; the oldest entries
// are dropped when the maximum is exceeded.
//
// A Logger can also be created with NewLogger() for situations where the
// central log is not wanted, tests for example.
package logger
