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
	"github.com/vectrexia/vectrexia/hardware/via/control"
	"github.com/vectrexia/vectrexia/logger"
)

// Lines is the state of the handshake lines and the timer 1 output. CB1 and
// CB2 are the effective values, taking into account whether the shift
// register is driving the line.
type Lines struct {
	CA1 bool
	CA2 bool
	CB1 bool
	CB2 bool
	PB7 bool
}

// Lines returns the current state of the handshake lines.
func (v *VIA) Lines() Lines {
	return Lines{
		CA1: v.ca1,
		CA2: v.ca2,
		CB1: v.effectiveCB1(),
		CB2: v.effectiveCB2(),
		PB7: v.pb7 == 0x80,
	}
}

// CB1 is driven by the shift register except when the shift register is
// clocked externally
func (v *VIA) effectiveCB1() bool {
	if v.regs.ACR&control.SRExt == control.SRExt {
		return v.cb1
	}
	return v.cb1SR
}

// CB2 is driven by the shift register when it is shifting out
func (v *VIA) effectiveCB2() bool {
	if v.regs.ACR&control.SRInOut == control.SRInOut {
		return v.cb2SR
	}
	return v.cb2
}

func (v *VIA) inputA() uint8 {
	if v.readPortA == nil {
		return 0
	}
	return v.readPortA(v.regs.DDRA, v.regs.ORA)
}

func (v *VIA) inputB() uint8 {
	if v.readPortB == nil {
		return 0
	}
	return v.readPortB(v.regs.DDRB, v.regs.ORB)
}

// portA is the effective value of port A. output bits come from ORA and
// input bits from the peripheral or the input latch
func (v *VIA) portA() uint8 {
	in := v.inputA()
	if v.regs.ACR.PALatch() {
		in = v.regs.IRALatch
	}
	return (v.regs.ORA & v.regs.DDRA) | (in &^ v.regs.DDRA)
}

// portB is the effective value of port B. as with portA() but bit 7 comes
// from timer 1 if the ACR says so
func (v *VIA) portB() uint8 {
	in := v.inputB()
	if v.regs.ACR.PBLatch() {
		in = v.regs.IRBLatch
	}
	b := (v.regs.ORB & v.regs.DDRB) | (in &^ v.regs.DDRB)
	if v.regs.ACR.PB7Control() {
		b = (b & 0x7f) | v.pb7
	}
	return b
}

// readORA and writeORA are shared by the ORA and ORANoHandshake addresses.
// only the ORA address applies the handshake
func (v *VIA) readORA() uint8 {
	return v.portA()
}

func (v *VIA) writeORA(data uint8) {
	v.regs.ORA = data
}

// clear the C1 flag and, unless the C2 line is an independent input, the C2
// flag. used whenever the CPU accesses a data register
func (v *VIA) clearPortFlags(c1, c2 control.InterruptFlags, mode control.C2Mode) {
	if mode.IsIndependent() {
		v.setIFR(c1, false)
		return
	}
	v.setIFR(c1|c2, false)
}

// CA2 goes low to signal "data taken". in pulse mode it is restored at the end
// of the cycle
func (v *VIA) readHandshakeA() {
	switch v.regs.PCR.CA2() {
	case control.C2Handshake, control.C2Pulse:
		v.ca2 = false
	}
	v.clearPortFlags(control.FlagCA1, control.FlagCA2, v.regs.PCR.CA2())
}

func (v *VIA) writeHandshakeA() {
	switch v.regs.PCR.CA2() {
	case control.C2Handshake:
		v.ca2 = true
	case control.C2Pulse:
		v.ca2 = false
	}
	v.clearPortFlags(control.FlagCA1, control.FlagCA2, v.regs.PCR.CA2())
}

// port B handshakes on writes only
func (v *VIA) writeHandshakeB() {
	switch v.regs.PCR.CB2() {
	case control.C2Handshake, control.C2Pulse:
		v.cb2 = false
	}
	v.accessPortB()
}

func (v *VIA) accessPortB() {
	v.clearPortFlags(control.FlagCB1, control.FlagCB2, v.regs.PCR.CB2())
}

// SetCA1 drives the CA1 input. An active transition sets the CA1 flag,
// latches port A input if latching is enabled and ends a CA2 handshake.
func (v *VIA) SetCA1(level bool) {
	if v.regs.PCR.CA1().Active(v.ca1, level) {
		v.setIFR(control.FlagCA1, true)
		if v.regs.ACR.PALatch() {
			v.regs.IRALatch = v.inputA()
		}
		if v.regs.PCR.CA2() == control.C2Handshake {
			v.ca2 = true
		}
		logger.Logf(v.env, "via", "CA1 %s", v.regs.PCR.CA1())
	}
	v.ca1 = level
}

// SetCA2 drives the CA2 input. It has no effect if CA2 is an output.
func (v *VIA) SetCA2(level bool) {
	mode := v.regs.PCR.CA2()
	if !mode.IsInput() {
		return
	}
	if mode.Edge().Active(v.ca2, level) {
		v.setIFR(control.FlagCA2, true)
	}
	v.ca2 = level
}

// SetCB1 drives the CB1 input. An active transition sets the CB1 flag,
// latches port B input if latching is enabled and ends a CB2 handshake. If the
// shift register is clocked externally then the transition also clocks the
// shift register.
func (v *VIA) SetCB1(level bool) {
	if v.regs.PCR.CB1().Active(v.cb1, level) {
		v.setIFR(control.FlagCB1, true)
		if v.regs.ACR.PBLatch() {
			v.regs.IRBLatch = v.inputB()
		}
		if v.regs.PCR.CB2() == control.C2Handshake {
			v.cb2 = true
		}
		logger.Logf(v.env, "via", "CB1 %s", v.regs.PCR.CB1())
	}
	if v.regs.ACR.Shift().IsExternal() {
		v.clockShiftRegister(v.cb1, level)
	}
	v.cb1 = level
}

// SetCB2 drives the CB2 input. It has no effect if CB2 is an output. When the
// shift register is shifting in, the level of CB2 is the next bit.
func (v *VIA) SetCB2(level bool) {
	mode := v.regs.PCR.CB2()
	if !mode.IsInput() {
		return
	}
	if mode.Edge().Active(v.cb2, level) {
		v.setIFR(control.FlagCB2, true)
	}
	v.cb2 = level
}
