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

// Raw ACR masks and values.
const (
	PALatch = 0x01
	PBLatch = 0x02

	SRMask  = 0x1c
	SRExt   = 0x0c
	SRInOut = 0x10

	T2Mask  = 0x20
	T2Pulse = 0x20

	T1Mask       = 0xc0
	T1Continuous = 0x40
	T1PB7Control = 0x80
)

// ACR is the value of the auxiliary control register.
type ACR uint8

// ShiftMode is the shift register mode selected by bits 2 to 4 of the ACR.
type ShiftMode uint8

// List of valid ShiftMode values.
const (
	ShiftDisabled  ShiftMode = 0x00
	ShiftInT2      ShiftMode = 0x04
	ShiftInO2      ShiftMode = 0x08
	ShiftInExt     ShiftMode = 0x0c
	ShiftOutT2Free ShiftMode = 0x10
	ShiftOutT2     ShiftMode = 0x14
	ShiftOutO2     ShiftMode = 0x18
	ShiftOutExt    ShiftMode = 0x1c
)

func (m ShiftMode) String() string {
	switch m {
	case ShiftDisabled:
		return "disabled"
	case ShiftInT2:
		return "in (T2)"
	case ShiftInO2:
		return "in (O2)"
	case ShiftInExt:
		return "in (CB1)"
	case ShiftOutT2Free:
		return "out (T2 free running)"
	case ShiftOutT2:
		return "out (T2)"
	case ShiftOutO2:
		return "out (O2)"
	case ShiftOutExt:
		return "out (CB1)"
	}
	panic("unknown shift mode")
}

// IsOutput returns true if the shift register is shifting out on CB2.
func (m ShiftMode) IsOutput() bool {
	return m&SRInOut == SRInOut
}

// IsExternal returns true if the shift register is clocked by an external
// signal on CB1.
func (m ShiftMode) IsExternal() bool {
	return m&SRExt == SRExt
}

// T1Mode is the timer 1 mode selected by bits 6 and 7 of the ACR.
type T1Mode uint8

// List of valid T1Mode values.
const (
	T1ModeOneShot       T1Mode = 0x00
	T1ModeContinuous    T1Mode = 0x40
	T1ModeOneShotPB7    T1Mode = 0x80
	T1ModeContinuousPB7 T1Mode = 0xc0
)

func (m T1Mode) String() string {
	switch m {
	case T1ModeOneShot:
		return "one-shot"
	case T1ModeContinuous:
		return "continuous"
	case T1ModeOneShotPB7:
		return "one-shot (PB7)"
	case T1ModeContinuousPB7:
		return "continuous (PB7)"
	}
	panic("unknown timer 1 mode")
}

// T2Mode is the timer 2 mode selected by bit 5 of the ACR.
type T2Mode uint8

// List of valid T2Mode values.
const (
	T2ModeTimed T2Mode = 0x00
	T2ModePulse T2Mode = 0x20
)

func (m T2Mode) String() string {
	switch m {
	case T2ModeTimed:
		return "timed"
	case T2ModePulse:
		return "pulse counting"
	}
	panic("unknown timer 2 mode")
}

// PALatch returns true if port A input is latched on an active CA1 edge.
func (a ACR) PALatch() bool {
	return a&PALatch == PALatch
}

// PBLatch returns true if port B input is latched on an active CB1 edge.
func (a ACR) PBLatch() bool {
	return a&PBLatch == PBLatch
}

// Shift returns the shift register mode.
func (a ACR) Shift() ShiftMode {
	return ShiftMode(a & SRMask)
}

// T2 returns the timer 2 mode.
func (a ACR) T2() T2Mode {
	return T2Mode(a & T2Mask)
}

// T1 returns the timer 1 mode.
func (a ACR) T1() T1Mode {
	return T1Mode(a & T1Mask)
}

// Continuous returns true if timer 1 reloads from the latches every time it
// wraps.
func (a ACR) Continuous() bool {
	return a&T1Continuous == T1Continuous
}

// PB7Control returns true if timer 1 drives bit 7 of port B.
func (a ACR) PB7Control() bool {
	return a&T1PB7Control == T1PB7Control
}

func (a ACR) String() string {
	return "T1=" + a.T1().String() + " T2=" + a.T2().String() + " SR=" + a.Shift().String()
}
