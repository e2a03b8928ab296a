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

// Timer is the state of one of the two VIA timers.
type Timer struct {
	// the live counter. it is the value returned by reads of the counter
	// registers
	Counter uint16

	// the timer is counting
	Enabled bool

	// the interrupt has been raised since the timer was last loaded. only
	// used in one-shot modes
	OneShot bool

	// timer 1 in continuous mode reloads from the latches on the cycle after
	// the counter has wrapped
	Reload bool
}

func (t Timer) String() string {
	s := fmt.Sprintf("%#04x", t.Counter)
	if !t.Enabled {
		return s + " (stopped)"
	}
	if t.OneShot {
		return s + " (fired)"
	}
	return s
}

func (v *VIA) startTimer1() {
	v.timer1.Counter = uint16(v.regs.T1LH)<<8 | uint16(v.regs.T1LL)
	v.timer1.Enabled = true
	v.timer1.OneShot = false
	v.timer1.Reload = false

	// timer 1 drives PB7 low until it fires
	if v.regs.ACR.PB7Control() {
		v.pb7 = 0x00
	}

	v.setIFR(control.FlagT1, false)
	logger.Logf(v.env, "via", "timer 1 started: %#04x (%s)", v.timer1.Counter, v.regs.ACR.T1())
}

func (v *VIA) startTimer2() {
	v.timer2.Counter = uint16(v.regs.T2CH)<<8 | uint16(v.regs.T2CL)
	v.timer2.Enabled = true
	v.timer2.OneShot = false

	v.setIFR(control.FlagT2, false)
	logger.Logf(v.env, "via", "timer 2 started: %#04x (%s)", v.timer2.Counter, v.regs.ACR.T2())
}

func (v *VIA) stepTimer1() {
	if !v.timer1.Enabled {
		return
	}

	if v.timer1.Reload {
		v.timer1.Counter = uint16(v.regs.T1LH)<<8 | uint16(v.regs.T1LL)
		v.timer1.Reload = false
		return
	}

	v.timer1.Counter--
	if v.timer1.Counter != 0xffff {
		return
	}

	if v.regs.ACR.Continuous() {
		v.setIFR(control.FlagT1, true)
		if v.regs.ACR.PB7Control() {
			v.pb7 ^= 0x80
		}
		v.timer1.Reload = true
		logger.Log(v.env, "via", "timer 1 interrupt (continuous)")
		return
	}

	// the counter continues in one-shot mode but there is no further
	// interrupt until the timer is loaded again
	if !v.timer1.OneShot {
		v.setIFR(control.FlagT1, true)
		if v.regs.ACR.PB7Control() {
			v.pb7 = 0x80
		}
		v.timer1.OneShot = true
		logger.Log(v.env, "via", "timer 1 interrupt (one-shot)")
	}
}

func (v *VIA) stepTimer2() {
	if !v.timer2.Enabled {
		return
	}

	// pulse counting is not used in the Vectrex
	if v.regs.ACR.T2() != control.T2ModeTimed {
		return
	}

	v.timer2.Counter--
	if v.timer2.Counter == 0xffff && !v.timer2.OneShot {
		v.setIFR(control.FlagT2, true)
		v.timer2.OneShot = true
		logger.Log(v.env, "via", "timer 2 interrupt")
	}
}
