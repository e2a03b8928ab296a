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
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/environment"
	"github.com/vectrexia/vectrexia/hardware/via"
	"github.com/vectrexia/vectrexia/hardware/via/addresses"
	"github.com/vectrexia/vectrexia/logger"
	"github.com/vectrexia/vectrexia/test"
)

func reg(r addresses.Register) uint8 {
	return uint8(r)
}

func TestReset(t *testing.T) {
	v := via.NewVIA(nil)
	test.ExpectEquality(t, v.Read(reg(addresses.IER)), 0x80)
	test.ExpectEquality(t, v.Read(reg(addresses.IFR)), 0x00)
	test.ExpectEquality(t, v.GetIRQ(), 0x00)
	test.ExpectEquality(t, v.Clock(), uint64(0))

	l := v.Lines()
	test.ExpectSuccess(t, l.CA2)
	test.ExpectSuccess(t, l.CB2)
	test.ExpectSuccess(t, l.PB7)
	test.ExpectFailure(t, l.CA1)
	test.ExpectFailure(t, l.CB1)

	// dirty the state and reset again
	v.Write(reg(addresses.T1LL), 0x10)
	v.Write(reg(addresses.T1CH), 0x00)
	v.Write(reg(addresses.IER), 0xff)
	v.Write(reg(addresses.PCR), 0xcc)
	v.Execute()
	v.Execute()

	v.Reset()
	test.ExpectEquality(t, v.Read(reg(addresses.IER)), 0x80)
	test.ExpectEquality(t, v.Read(reg(addresses.PCR)), 0x00)
	test.ExpectEquality(t, v.Clock(), uint64(0))
	test.ExpectEquality(t, *v.GetTimer1(), via.Timer{})
	test.ExpectEquality(t, *v.GetShiftRegister(), via.ShiftRegister{})
	test.ExpectSuccess(t, v.Lines().CA2)
	test.ExpectSuccess(t, v.Lines().CB2)
}

func TestRoundTrip(t *testing.T) {
	v := via.NewVIA(nil)

	for _, r := range []addresses.Register{addresses.PCR, addresses.DDRA, addresses.DDRB, addresses.ACR, addresses.SR} {
		for x := 0; x <= 0xff; x++ {
			v.Write(reg(r), uint8(x))
			test.ExpectEquality(t, v.Read(reg(r)), uint8(x), r)
		}
	}
}

func TestAddressMirroring(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(0xf3, 0x5a)
	test.ExpectEquality(t, v.Read(reg(addresses.DDRA)), 0x5a)
	test.ExpectEquality(t, v.Read(0x23), 0x5a)
	test.ExpectEquality(t, v.Read(0xfe), 0x80)
}

func TestTimerLatches(t *testing.T) {
	v := via.NewVIA(nil)

	// writing the low counter address goes to the latch
	v.Write(reg(addresses.T1CL), 0x34)
	test.ExpectEquality(t, v.Read(reg(addresses.T1LL)), 0x34)
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0))

	// writing the latches does not load or start the timer
	v.Write(reg(addresses.T1LH), 0x12)
	test.ExpectEquality(t, v.Read(reg(addresses.T1LH)), 0x12)
	test.ExpectFailure(t, v.GetTimer1().Enabled)

	v.Write(reg(addresses.T1CH), 0x56)
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0x5634))
	test.ExpectEquality(t, v.Read(reg(addresses.T1CH)), 0x56)
	test.ExpectEquality(t, v.Read(reg(addresses.T1LH)), 0x56)
}

func TestRegisterState(t *testing.T) {
	v := via.NewVIA(nil)
	v.SetPortAReadCallback(func(ddr, output uint8) uint8 {
		return 0xa5
	})
	v.SetPortBReadCallback(func(ddr, output uint8) uint8 {
		return 0x3c
	})

	v.Write(reg(addresses.DDRA), 0xf0)
	v.Write(reg(addresses.ORA), 0x11)
	v.Write(reg(addresses.DDRB), 0x0f)
	v.Write(reg(addresses.ORB), 0x22)
	v.Write(reg(addresses.ACR), 0x40)
	v.Write(reg(addresses.PCR), 0x0e)
	v.Write(reg(addresses.IER), 0xa0)
	v.Write(reg(addresses.T1LL), 0x00)
	v.Write(reg(addresses.T1CH), 0x02)
	v.Write(reg(addresses.T2CL), 0x05)
	v.Write(reg(addresses.T2CH), 0x01)
	v.Execute()

	s := v.GetRegisterState()
	test.ExpectEquality(t, s.ORA, 0x15)
	test.ExpectEquality(t, s.ORB, 0x32)
	test.ExpectEquality(t, s.T1CL, 0xff)
	test.ExpectEquality(t, s.T1CH, 0x01)
	test.ExpectEquality(t, s.T2CL, 0x04)
	test.ExpectEquality(t, s.T2CH, 0x01)
	test.ExpectEquality(t, s.IER, 0xa0)

	// every value matches what a read would return. reading the timer low
	// bytes has side effects so they are read last
	for _, r := range []addresses.Register{
		addresses.ORB, addresses.ORANoHandshake, addresses.DDRB, addresses.DDRA,
		addresses.T1CH, addresses.T1LL, addresses.T1LH, addresses.T2CH,
		addresses.ACR, addresses.PCR, addresses.IFR, addresses.IER,
		addresses.T1CL, addresses.T2CL, addresses.SR,
	} {
		test.ExpectEquality(t, v.Read(reg(r)), s.Value(r), r)
	}

	test.ExpectSuccess(t, strings.Contains(s.String(), "DDRA=0xf0"))
}

func TestUpdateCallback(t *testing.T) {
	v := via.NewVIA(nil)

	var calls int
	var ora, portB uint8
	var ca2 bool
	v.SetUpdateCallback(func(a uint8, b uint8, ca1, c2, cb1, cb2 bool) {
		calls++
		ora = a
		portB = b
		ca2 = c2
	})

	v.Write(reg(addresses.ORA), 0x7f)
	v.Write(reg(addresses.DDRB), 0xff)
	v.Write(reg(addresses.ORB), 0x81)
	v.Execute()
	test.ExpectEquality(t, calls, 1)
	test.ExpectEquality(t, ora, 0x7f)
	test.ExpectEquality(t, portB, 0x81)
	test.ExpectSuccess(t, ca2)

	// the callback sees the handshake pulse before it is restored
	v.Write(reg(addresses.PCR), 0x0a)
	v.Read(reg(addresses.ORA))
	v.Execute()
	test.ExpectEquality(t, calls, 2)
	test.ExpectFailure(t, ca2)
	test.ExpectSuccess(t, v.Lines().CA2)

	v.SetUpdateCallback(nil)
	v.Execute()
	test.ExpectEquality(t, calls, 2)
	test.ExpectEquality(t, v.Clock(), uint64(3))
}

func TestSnapshot(t *testing.T) {
	v := via.NewVIA(nil)
	v.SetUpdateCallback(func(uint8, uint8, bool, bool, bool, bool) {
		t.Errorf("callback called on snapshot")
	})
	v.Write(reg(addresses.T1LL), 0x10)
	v.Write(reg(addresses.T1CH), 0x00)

	s := v.Snapshot()
	v.SetUpdateCallback(nil)
	v.Execute()
	test.ExpectEquality(t, v.GetTimer1().Counter, uint16(0x0f))
	test.ExpectEquality(t, s.GetTimer1().Counter, uint16(0x10))

	s.Execute()
	test.ExpectEquality(t, s.GetTimer1().Counter, uint16(0x0f))
	test.ExpectEquality(t, s.String(), v.String())
}

func TestLogging(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, afero.NewMemMapFs(), nil)
	test.DemandSuccess(t, err)

	logger.Clear()
	v := via.NewVIA(env)
	v.Write(reg(addresses.T1LL), 0x01)
	v.Write(reg(addresses.T1CH), 0x00)

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	// echoed entries only keep the tail of the output
	echo, err := test.NewRingWriter(16)
	test.DemandSuccess(t, err)
	logger.SetEcho(echo, false)
	defer logger.SetEcho(nil, false)

	test.DemandSuccess(t, env.Prefs.Logging.Set(true))
	v.Write(reg(addresses.T1CH), 0x00)
	test.ExpectEquality(t, len(echo.String()), 16)
	v.Execute()
	v.Execute()
	test.ExpectEquality(t, echo.String(), "rupt (one-shot)\n")

	w.Clear()
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "via: timer 1 started"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "via: timer 1 interrupt (one-shot)"))
	logger.Clear()
}
