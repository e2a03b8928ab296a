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

	"github.com/vectrexia/vectrexia/environment"
	"github.com/vectrexia/vectrexia/hardware/via/control"
)

// PortReader returns the value presented by a peripheral on a port. It is
// given the current data direction register and the value of the output
// register. Only the bits that are inputs in the DDR are used.
type PortReader func(ddr uint8, output uint8) uint8

// UpdateFunc is called once per cycle with the value of the A output
// register, the effective value of port B and the state of the four
// handshake lines.
type UpdateFunc func(ora uint8, portB uint8, ca1, ca2, cb1, cb2 bool)

// VIA implements the 6522 Versatile Interface Adapter.
type VIA struct {
	env *environment.Environment

	regs registerFile

	timer1 Timer
	timer2 Timer
	sr     ShiftRegister

	// handshake lines. CB1 and CB2 have a second value used when the shift
	// register is driving the line
	ca1   bool
	ca2   bool
	cb1   bool
	cb1SR bool
	cb2   bool
	cb2SR bool

	// timer 1 output on PB7. either 0x00 or 0x80
	pb7 uint8

	// number of cycles since reset
	clk uint64

	readPortA PortReader
	readPortB PortReader
	update    UpdateFunc
}

// NewVIA is the preferred method of initialisation for the VIA type. The
// environment is used for logging and can be nil.
func NewVIA(env *environment.Environment) *VIA {
	v := &VIA{
		env: env,
	}
	v.Reset()
	return v
}

// Reset the VIA to its power-on state. Callbacks are not removed.
func (v *VIA) Reset() {
	v.regs = registerFile{}
	v.timer1 = Timer{}
	v.timer2 = Timer{}
	v.sr = ShiftRegister{}

	v.ca1 = false
	v.ca2 = true
	v.cb1 = false
	v.cb1SR = false
	v.cb2 = true
	v.cb2SR = false

	v.pb7 = 0x80
	v.clk = 0
}

// Execute advances the VIA by one cycle.
func (v *VIA) Execute() {
	v.stepTimer1()
	v.stepTimer2()
	v.stepShiftRegister()

	if v.update != nil {
		v.update(v.regs.ORA, v.portB(), v.ca1, v.ca2, v.effectiveCB1(), v.effectiveCB2())
	}

	// end of pulse mode handshake
	if v.regs.PCR.CA2() == control.C2Pulse {
		v.ca2 = true
	}
	if v.regs.PCR.CB2() == control.C2Pulse {
		v.cb2 = true
	}

	v.clk++
}

// SetPortAReadCallback sets the function that supplies the input bits of port
// A. A nil function means that input bits read as zero.
func (v *VIA) SetPortAReadCallback(f PortReader) {
	v.readPortA = f
}

// SetPortBReadCallback sets the function that supplies the input bits of port
// B. A nil function means that input bits read as zero.
func (v *VIA) SetPortBReadCallback(f PortReader) {
	v.readPortB = f
}

// SetUpdateCallback sets the function called at the end of every cycle. A nil
// function removes the callback.
func (v *VIA) SetUpdateCallback(f UpdateFunc) {
	v.update = f
}

// GetTimer1 returns a reference to the state of timer 1. The returned Timer can
// be modified by a debugger.
func (v *VIA) GetTimer1() *Timer {
	return &v.timer1
}

// GetTimer2 returns a reference to the state of timer 2.
func (v *VIA) GetTimer2() *Timer {
	return &v.timer2
}

// GetShiftRegister returns a reference to the state of the shift register.
func (v *VIA) GetShiftRegister() *ShiftRegister {
	return &v.sr
}

// Clock returns the number of cycles executed since the last reset.
func (v *VIA) Clock() uint64 {
	return v.clk
}

// Snapshot creates a copy of the VIA in its current state. Callbacks are not
// copied.
func (v *VIA) Snapshot() *VIA {
	n := *v
	n.readPortA = nil
	n.readPortB = nil
	n.update = nil
	return &n
}

func (v *VIA) String() string {
	return fmt.Sprintf("T1=%s T2=%s SR=%s IFR=%s IER=%s",
		v.timer1, v.timer2, v.sr,
		v.regs.IFR, v.regs.IER,
	)
}
