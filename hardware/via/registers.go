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
	"strings"

	"github.com/vectrexia/vectrexia/hardware/via/addresses"
	"github.com/vectrexia/vectrexia/hardware/via/control"
	"github.com/vectrexia/vectrexia/logger"
)

// the stored register values. the timer 1 counter registers are not stored
// because writes go to the latches and reads come from the live counter
type registerFile struct {
	ORB  uint8
	ORA  uint8
	DDRB uint8
	DDRA uint8
	T1LL uint8
	T1LH uint8
	T2CL uint8
	T2CH uint8
	SR   uint8
	ACR  control.ACR
	PCR  control.PCR
	IFR  control.InterruptFlags
	IER  control.InterruptFlags

	// input captured on the active edge of CA1/CB1 when latching is enabled
	IRALatch uint8
	IRBLatch uint8
}

// Registers is the state of the VIA registers as they would be seen by the
// CPU.
type Registers struct {
	ORB  uint8
	ORA  uint8
	DDRB uint8
	DDRA uint8
	T1CL uint8
	T1CH uint8
	T1LL uint8
	T1LH uint8
	T2CL uint8
	T2CH uint8
	SR   uint8
	ACR  uint8
	PCR  uint8
	IFR  uint8
	IER  uint8
}

// Value returns the value of the register at the address.
func (r Registers) Value(reg addresses.Register) uint8 {
	switch reg {
	case addresses.ORB:
		return r.ORB
	case addresses.ORA, addresses.ORANoHandshake:
		return r.ORA
	case addresses.DDRB:
		return r.DDRB
	case addresses.DDRA:
		return r.DDRA
	case addresses.T1CL:
		return r.T1CL
	case addresses.T1CH:
		return r.T1CH
	case addresses.T1LL:
		return r.T1LL
	case addresses.T1LH:
		return r.T1LH
	case addresses.T2CL:
		return r.T2CL
	case addresses.T2CH:
		return r.T2CH
	case addresses.SR:
		return r.SR
	case addresses.ACR:
		return r.ACR
	case addresses.PCR:
		return r.PCR
	case addresses.IFR:
		return r.IFR
	case addresses.IER:
		return r.IER
	}
	return 0
}

func (r Registers) String() string {
	s := strings.Builder{}
	for i := addresses.ORB; i < addresses.ORANoHandshake; i++ {
		if i > addresses.ORB {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%#02x", i, r.Value(i)))
	}
	return s.String()
}

// GetRegisterState returns the value of every register as Read() would return
// it. None of the side effects of Read() are applied.
func (v *VIA) GetRegisterState() Registers {
	return Registers{
		ORB:  v.portB(),
		ORA:  v.portA(),
		DDRB: v.regs.DDRB,
		DDRA: v.regs.DDRA,
		T1CL: uint8(v.timer1.Counter),
		T1CH: uint8(v.timer1.Counter >> 8),
		T1LL: v.regs.T1LL,
		T1LH: v.regs.T1LH,
		T2CL: uint8(v.timer2.Counter),
		T2CH: uint8(v.timer2.Counter >> 8),
		SR:   v.regs.SR,
		ACR:  uint8(v.regs.ACR),
		PCR:  uint8(v.regs.PCR),
		IFR:  uint8(v.regs.IFR),
		IER:  uint8(v.regs.IER | control.FlagIRQ),
	}
}

// Read the register at the address. Only the lower four bits of the address
// are used.
func (v *VIA) Read(addr uint8) uint8 {
	var data uint8

	switch reg := addresses.Normalise(addr); reg {
	case addresses.ORB:
		// reading IRB clears the CB1 flag and, for non-independent
		// inputs, the CB2 flag
		v.accessPortB()
		data = v.portB()

	case addresses.ORA:
		v.readHandshakeA()
		data = v.readORA()

	case addresses.ORANoHandshake:
		data = v.readORA()

	case addresses.T1CL:
		v.timer1.Enabled = false
		if v.regs.ACR.PB7Control() {
			v.pb7 = 0x80
		}
		v.setIFR(control.FlagT1, false)
		data = uint8(v.timer1.Counter)

	case addresses.T1CH:
		data = uint8(v.timer1.Counter >> 8)

	case addresses.T1LL:
		data = v.regs.T1LL

	case addresses.T1LH:
		data = v.regs.T1LH

	case addresses.T2CL:
		v.timer2.Enabled = false
		v.setIFR(control.FlagT2, false)
		data = uint8(v.timer2.Counter)

	case addresses.T2CH:
		data = uint8(v.timer2.Counter >> 8)

	case addresses.SR:
		v.setIFR(control.FlagSR, false)
		v.sr.Shifted = 0
		v.sr.Enabled = true
		data = v.regs.SR

	case addresses.IER:
		data = uint8(v.regs.IER | control.FlagIRQ)

	case addresses.DDRB:
		data = v.regs.DDRB

	case addresses.DDRA:
		data = v.regs.DDRA

	case addresses.ACR:
		data = uint8(v.regs.ACR)

	case addresses.PCR:
		data = uint8(v.regs.PCR)

	case addresses.IFR:
		data = uint8(v.regs.IFR)

	default:
		logger.Logf(v.env, "via", "read of unknown register %s", reg)
	}

	return data
}

// Write data to the register at the address. Only the lower four bits of the
// address are used.
func (v *VIA) Write(addr uint8, data uint8) {
	switch reg := addresses.Normalise(addr); reg {
	case addresses.ORB:
		v.writeHandshakeB()
		v.regs.ORB = data

	case addresses.ORA:
		v.writeHandshakeA()
		v.writeORA(data)

	case addresses.ORANoHandshake:
		v.writeORA(data)

	case addresses.T1CL, addresses.T1LL:
		v.regs.T1LL = data

	case addresses.T1CH:
		v.regs.T1LH = data
		v.startTimer1()

	case addresses.T1LH:
		v.regs.T1LH = data

	case addresses.T2CL:
		v.regs.T2CL = data

	case addresses.T2CH:
		v.regs.T2CH = data
		v.startTimer2()

	case addresses.SR:
		v.setIFR(control.FlagSR, false)
		v.sr.Shifted = 0
		v.regs.SR = data
		v.sr.Enabled = true

	case addresses.IFR:
		v.setIFR(control.InterruptFlags(data), false)

	case addresses.IER:
		v.setIER(control.InterruptFlags(data), data&uint8(control.FlagIRQ) != 0)

	case addresses.PCR:
		v.regs.PCR = control.PCR(data)
		v.ca2 = v.regs.PCR.CA2() != control.C2Low
		v.cb2 = v.regs.PCR.CB2() != control.C2Low

	case addresses.DDRB:
		v.regs.DDRB = data

	case addresses.DDRA:
		v.regs.DDRA = data

	case addresses.ACR:
		v.regs.ACR = control.ACR(data)

	default:
		logger.Logf(v.env, "via", "write to unknown register %s (%#02x)", reg, data)
	}
}
