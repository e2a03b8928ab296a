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

package control

import "strings"

// InterruptFlags is the value of the IFR or IER registers.
type InterruptFlags uint8

// List of interrupt flags. IRQ is bit 7 of the IFR and is the composite of
// the other flags and the enable mask. In the IER, bit 7 selects between
// setting and clearing enable bits on a write.
const (
	FlagCA2 InterruptFlags = 0x01
	FlagCA1 InterruptFlags = 0x02
	FlagSR  InterruptFlags = 0x04
	FlagCB2 InterruptFlags = 0x08
	FlagCB1 InterruptFlags = 0x10
	FlagT2  InterruptFlags = 0x20
	FlagT1  InterruptFlags = 0x40
	FlagIRQ InterruptFlags = 0x80

	// the flags excluding IRQ
	FlagSources InterruptFlags = 0x7f
)

var flagNames = []struct {
	flag InterruptFlags
	name string
}{
	{FlagIRQ, "IRQ"},
	{FlagT1, "T1"},
	{FlagT2, "T2"},
	{FlagCB1, "CB1"},
	{FlagCB2, "CB2"},
	{FlagSR, "SR"},
	{FlagCA1, "CA1"},
	{FlagCA2, "CA2"},
}

// Pending returns the flags that are both set and enabled, excluding bit 7.
func (f InterruptFlags) Pending(enabled InterruptFlags) InterruptFlags {
	return f & enabled & FlagSources
}

func (f InterruptFlags) String() string {
	if f == 0 {
		return "-"
	}
	s := strings.Builder{}
	for _, n := range flagNames {
		if f&n.flag == n.flag {
			if s.Len() > 0 {
				s.WriteRune(' ')
			}
			s.WriteString(n.name)
		}
	}
	return s.String()
}
