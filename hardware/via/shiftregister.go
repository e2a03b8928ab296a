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

package via

import (
	"fmt"

	"github.com/vectrexia/vectrexia/hardware/via/control"
	"github.com/vectrexia/vectrexia/logger"
)

// ShiftRegister is the state of the VIA shift register. The shifted value
// itself is in the SR register.
type ShiftRegister struct {
	// shifting is active. set by accesses to the SR register and cleared when
	// eight bits have been shifted
	Enabled bool

	// number of bits shifted since the SR register was last accessed
	Shifted int

	// the sub-clock used in the timer 2 modes. reloaded from the low byte of
	// timer 2 when it wraps
	Counter uint8
}

func (sr ShiftRegister) String() string {
	if !sr.Enabled {
		return fmt.Sprintf("%d (stopped)", sr.Shifted)
	}
	return fmt.Sprintf("%d", sr.Shifted)
}

func (v *VIA) stepShiftRegister() {
	switch v.regs.ACR.Shift() {
	case control.ShiftInT2, control.ShiftOutT2, control.ShiftOutT2Free:
		// CB1 is an output toggled when the sub-clock times out
		if v.sr.Counter == 0x00 {
			v.clockShiftRegister(v.cb1SR, !v.cb1SR)
			v.cb1SR = !v.cb1SR
		}

	case control.ShiftInO2, control.ShiftOutO2:
		// CB1 is an output toggled every cycle
		v.clockShiftRegister(v.cb1SR, !v.cb1SR)
		v.cb1SR = !v.cb1SR

	default:
		// disabled and external clock modes. CB1 is an input and any shifting
		// happens in SetCB1()
	}

	v.sr.Counter--
	if v.sr.Counter == 0xff {
		v.sr.Counter = v.regs.T2CL
	}
}

// clockShiftRegister applies a transition of the shift clock. output modes
// shift on the falling edge and input modes on the rising edge
func (v *VIA) clockShiftRegister(from, to bool) {
	if !v.sr.Enabled {
		return
	}

	mode := v.regs.ACR.Shift()

	if mode.IsOutput() {
		if !control.NegativeEdge.Active(from, to) {
			return
		}
		bit := v.regs.SR & 0x80
		v.cb2SR = bit == 0x80
		v.regs.SR = v.regs.SR<<1 | bit>>7
	} else {
		if !control.PositiveEdge.Active(from, to) {
			return
		}
		v.regs.SR <<= 1
		if v.cb2 {
			v.regs.SR |= 0x01
		}
	}

	v.sr.Shifted++
	if v.sr.Shifted < 8 {
		return
	}

	// free running mode recirculates the value forever
	if mode == control.ShiftOutT2Free {
		v.sr.Shifted = 0
		return
	}

	v.sr.Enabled = false
	v.setIFR(control.FlagSR, true)
	logger.Logf(v.env, "via", "shift register complete: %#02x (%s)", v.regs.SR, mode)
}
