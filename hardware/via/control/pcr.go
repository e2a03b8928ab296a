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

// Raw PCR masks and values.
const (
	CA1Control  = 0x01
	CA2Mask     = 0x0e
	CA2Output   = 0x08
	CA2OutPulse = 0x0a
	CA2OutLow   = 0x0c
	CA2OutHigh  = 0x0e

	CB1Control  = 0x10
	CB2Mask     = 0xe0
	CB2Output   = 0x80
	CB2OutPulse = 0xa0
	CB2OutLow   = 0xc0
	CB2OutHigh  = 0xe0
)

// PCR is the value of the peripheral control register.
type PCR uint8

// EdgeMode is the active transition of the CA1 and CB1 inputs.
type EdgeMode uint8

// List of valid EdgeMode values.
const (
	NegativeEdge EdgeMode = 0
	PositiveEdge EdgeMode = 1
)

func (m EdgeMode) String() string {
	if m == PositiveEdge {
		return "positive edge"
	}
	return "negative edge"
}

// Active returns true if the transition from one level to another is the
// active edge for the mode.
func (m EdgeMode) Active(from, to bool) bool {
	if m == PositiveEdge {
		return !from && to
	}
	return from && !to
}

// C2Mode is the mode of the CA2 or CB2 line. Values are expressed in the bit
// positions of the CA2 field. The CB2 field is shifted down to match.
type C2Mode uint8

// List of valid C2Mode values.
const (
	C2InputNegative       C2Mode = 0x00
	C2IndependentNegative C2Mode = 0x02
	C2InputPositive       C2Mode = 0x04
	C2IndependentPositive C2Mode = 0x06
	C2Handshake           C2Mode = 0x08
	C2Pulse               C2Mode = 0x0a
	C2Low                 C2Mode = 0x0c
	C2High                C2Mode = 0x0e
)

func (m C2Mode) String() string {
	switch m {
	case C2InputNegative:
		return "input (negative edge)"
	case C2IndependentNegative:
		return "independent input (negative edge)"
	case C2InputPositive:
		return "input (positive edge)"
	case C2IndependentPositive:
		return "independent input (positive edge)"
	case C2Handshake:
		return "handshake output"
	case C2Pulse:
		return "pulse output"
	case C2Low:
		return "output low"
	case C2High:
		return "output high"
	}
	panic("unknown C2 mode")
}

// IsInput returns true if the line is an interrupt input.
func (m C2Mode) IsInput() bool {
	return m&0x08 == 0x00
}

// IsIndependent returns true if the line is an interrupt input whose flag is
// not cleared by accesses to the data register.
func (m C2Mode) IsIndependent() bool {
	return m.IsInput() && m&0x02 == 0x02
}

// Edge returns the active edge of an input mode.
func (m C2Mode) Edge() EdgeMode {
	if m&0x04 == 0x04 {
		return PositiveEdge
	}
	return NegativeEdge
}

// CA1 returns the active edge for CA1.
func (p PCR) CA1() EdgeMode {
	return EdgeMode(p & CA1Control)
}

// CA2 returns the mode of CA2.
func (p PCR) CA2() C2Mode {
	return C2Mode(p & CA2Mask)
}

// CB1 returns the active edge for CB1.
func (p PCR) CB1() EdgeMode {
	return EdgeMode((p & CB1Control) >> 4)
}

// CB2 returns the mode of CB2.
func (p PCR) CB2() C2Mode {
	return C2Mode((p & CB2Mask) >> 4)
}

func (p PCR) String() string {
	return "CA1=" + p.CA1().String() + " CA2=" + p.CA2().String() +
		" CB1=" + p.CB1().String() + " CB2=" + p.CB2().String()
}
