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

package addresses

import (
	"fmt"
	"strings"
)

// Register is the address of a VIA register.
type Register uint8

// List of valid Register values. ORANoHandshake mirrors ORA without the
// handshake side effects on CA2.
const (
	ORB Register = iota
	ORA
	DDRB
	DDRA
	T1CL
	T1CH
	T1LL
	T1LH
	T2CL
	T2CH
	SR
	ACR
	PCR
	IFR
	IER
	ORANoHandshake
)

// NumRegisters is the number of addressable slots in the VIA.
const NumRegisters = 16

// Mask is applied to bus addresses before decoding.
const Mask = 0x0f

// CanonicalSymbols is the canonical name of each register, indexed by
// register address.
var CanonicalSymbols = [NumRegisters]string{
	"ORB", "ORA", "DDRB", "DDRA",
	"T1CL", "T1CH", "T1LL", "T1LH",
	"T2CL", "T2CH", "SR", "ACR",
	"PCR", "IFR", "IER", "ORA_NH",
}

// Normalise returns the register selected by an address on the bus.
func Normalise(addr uint8) Register {
	return Register(addr & Mask)
}

func (r Register) String() string {
	if int(r) < NumRegisters {
		return CanonicalSymbols[r]
	}
	return fmt.Sprintf("%#02x", uint8(r))
}

// Lookup returns the register with the canonical name. The comparison is not
// case sensitive.
func Lookup(name string) (Register, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, s := range CanonicalSymbols {
		if s == name {
			return Register(i), true
		}
	}
	return 0, false
}
