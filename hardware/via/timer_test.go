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

package via_test

import (
	"testing"

	"github.com/vectrexia/vectrexia/hardware/via"
	"github.com/vectrexia/vectrexia/hardware/via/addresses"
	"github.com/vectrexia/vectrexia/test"
)

func loadTimer1(v *via.VIA, latch uint16) {
	v.Write(reg(addresses.T1LL), uint8(latch))
	v.Write(reg(addresses.T1CH), uint8(latch>>8))
}

func TestTimer1Continuous(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.IER), 0xc0)
	v.Write(reg(addresses.ACR), 0x40)

	loadTimer1(v, 0x0010)
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0x0010))
	test.ExpectSuccess(t, v.GetTimer1().Enabled)

	for i := 0; i < 16; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0x0000))
	test.ExpectEquality(t, v.GetIRQ(), 0x00)

	// the counter wraps on the seventeenth cycle
	v.Execute()
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0xffff))
	test.ExpectEquality(t, v.GetIRQ(), 0x80)
	test.ExpectEquality(t, v.Read(reg(addresses.IFR)), 0xc0)

	// and reloads on the following cycle
	v.Execute()
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0x0010))

	// subsequent interrupts every latch+2 cycles
	for period := 0; period < 3; period++ {
		v.Write(reg(addresses.IFR), 0x40)
		test.ExpectEquality(t, v.GetIRQ(), 0x00)

		cycles := 0
		for v.GetIRQ() == 0x00 {
			v.Execute()
			cycles++
			if cycles > 0x20 {
				t.Fatalf("timer 1 did not fire")
			}
		}

		// first period was measured from the reload not the wrap
		if period == 0 {
			test.ExpectEquality(t, cycles, 0x10+1)
		} else {
			test.ExpectEquality(t, cycles, 0x10+2)
		}
		test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0xffff))
	}
}

func TestTimer1OneShot(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.IER), 0xc0)

	loadTimer1(v, 0x0010)
	for i := 0; i < 17; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0xffff))
	test.ExpectEquality(t, v.GetIRQ(), 0x80)
	test.ExpectSuccess(t, v.GetTimer1().OneShot)

	// the counter keeps going but the interrupt does not fire again
	v.Write(reg(addresses.IFR), 0x40)
	for i := 0; i < 0x10010; i++ {
		v.Execute()
		if v.GetIRQ() != 0x00 {
			t.Fatalf("one-shot timer fired more than once")
		}
	}
	test.ExpectInequality(t, v.GetTimer1().Counter, uint16(0xffff))

	// writing the high counter re-arms the timer
	v.Write(reg(addresses.T1CH), 0x00)
	test.ExpectFailure(t, v.GetTimer1().OneShot)
	for i := 0; i < 17; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetIRQ(), 0x80)
}

func TestTimer1Read(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.IER), 0xc0)

	loadTimer1(v, 0x0001)
	v.Execute()
	v.Execute()
	test.ExpectEquality(t, v.GetIRQ(), 0x80)

	// reading the high byte has no side effect
	test.ExpectEquality(t, v.Read(reg(addresses.T1CH)), 0xff)
	test.ExpectEquality(t, v.GetIRQ(), 0x80)

	// reading the low byte clears the interrupt and stops the timer
	test.ExpectEquality(t, v.Read(reg(addresses.T1CL)), 0xff)
	test.ExpectEquality(t, v.GetIRQ(), 0x00)
	test.ExpectFailure(t, v.GetTimer1().Enabled)

	v.Execute()
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0xffff))
}

func TestTimer1PB7(t *testing.T) {
	v := via.NewVIA(nil)
	v.SetPortBReadCallback(func(ddr, output uint8) uint8 {
		return 0xff
	})

	// PB7 is not used unless the ACR says so
	v.Write(reg(addresses.ACR), 0x40)
	loadTimer1(v, 0x0002)
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0xff)

	// continuous with PB7 output. PB7 goes low on load and toggles on every
	// interrupt
	v.Write(reg(addresses.ACR), 0xc0)
	loadTimer1(v, 0x0002)
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0x7f)
	test.ExpectFailure(t, v.Lines().PB7)

	for i := 0; i < 3; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0xff)
	for i := 0; i < 4; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0x7f)

	// reading T1CL restores PB7
	v.Read(reg(addresses.T1CL))
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0xff)

	// one-shot with PB7 output. PB7 goes high when the timer fires and
	// stays there
	v.Write(reg(addresses.ACR), 0x80)
	loadTimer1(v, 0x0002)
	test.ExpectFailure(t, v.Lines().PB7)
	for i := 0; i < 3; i++ {
		v.Execute()
	}
	test.ExpectSuccess(t, v.Lines().PB7)
	for i := 0; i < 0x20; i++ {
		v.Execute()
	}
	test.ExpectSuccess(t, v.Lines().PB7)

	// PB7 output replaces the port bit even when DDRB says it is an output
	v.Write(reg(addresses.DDRB), 0xff)
	v.Write(reg(addresses.ORB), 0x00)
	loadTimer1(v, 0x0002)
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0x00)
	for i := 0; i < 3; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.Read(reg(addresses.ORB)), 0x80)
}

func TestTimer2(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.IER), 0xa0)

	v.Write(reg(addresses.T2CL), 0x05)
	test.ExpectFailure(t, v.GetTimer2().Enabled)
	v.Write(reg(addresses.T2CH), 0x00)
	test.ExpectSuccess(t, v.GetTimer2().Enabled)
	test.ExpectEquality(t, v.GetTimer2().Counter, uint16(0x0005))

	for i := 0; i < 5; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetIRQ(), 0x00)
	v.Execute()
	test.ExpectEquality(t, v.GetIRQ(), 0x80)
	test.ExpectEquality(t, v.Read(reg(addresses.IFR)), 0xa0)

	// timer 2 is always one-shot
	v.Write(reg(addresses.IFR), 0x20)
	for i := 0; i < 0x10010; i++ {
		v.Execute()
		if v.GetIRQ() != 0x00 {
			t.Fatalf("timer 2 fired more than once")
		}
	}

	// reading T2CL clears the flag and stops the timer
	v.Write(reg(addresses.T2CH), 0x00)
	for i := 0; i < 6; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetIRQ(), 0x80)
	test.ExpectEquality(t, v.Read(reg(addresses.T2CH)), 0xff)
	test.ExpectEquality(t, v.Read(reg(addresses.T2CL)), 0xff)
	test.ExpectEquality(t, v.GetIRQ(), 0x00)
	test.ExpectFailure(t, v.GetTimer2().Enabled)
}

func TestTimer2Pulse(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.IER), 0xa0)
	v.Write(reg(addresses.ACR), 0x20)

	v.Write(reg(addresses.T2CL), 0x01)
	v.Write(reg(addresses.T2CH), 0x00)
	for i := 0; i < 0x10; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetTimer2().Counter, uint16(0x0001))
	test.ExpectEquality(t, v.GetIRQ(), 0x00)
}
