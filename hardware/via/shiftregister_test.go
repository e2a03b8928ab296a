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

func srFlag(v *via.VIA) bool {
	return v.Read(reg(addresses.IFR))&0x04 == 0x04
}

func TestShiftOutPhase2(t *testing.T) {
	v := via.NewVIA(nil)

	var cb1, cb2 bool
	v.SetUpdateCallback(func(_ uint8, _ uint8, _, _, c1, c2 bool) {
		cb1 = c1
		cb2 = c2
	})

	v.Write(reg(addresses.ACR), 0x18)
	v.Write(reg(addresses.SR), 0xa5)
	test.ExpectSuccess(t, v.GetShiftRegister().Enabled)

	// a bit is shifted out on every other cycle, most significant bit first
	expected := []bool{true, false, true, false, false, true, false, true}
	for i := 0; i < 16; i++ {
		v.Execute()
		if i%2 == 0 {
			test.ExpectSuccess(t, cb1, i)
			test.ExpectFailure(t, srFlag(v), i)
		} else {
			test.ExpectFailure(t, cb1, i)
			test.ExpectEquality(t, cb2, expected[i/2], i)
		}
	}

	test.ExpectSuccess(t, srFlag(v))
	test.ExpectFailure(t, v.GetShiftRegister().Enabled)
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 8)

	// the register has stopped
	for i := 0; i < 16; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 8)

	// the value has been recirculated. reading clears the flag and restarts
	// the register
	test.ExpectEquality(t, v.Read(reg(addresses.SR)), 0xa5)
	test.ExpectFailure(t, srFlag(v))
	test.ExpectSuccess(t, v.GetShiftRegister().Enabled)
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 0)
}

func TestShiftInPhase2(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.ACR), 0x08)
	v.Write(reg(addresses.SR), 0x00)

	const value = 0x5a
	for i := 7; i >= 0; i-- {
		v.SetCB2((value>>i)&0x01 == 0x01)
		v.Execute()
		v.Execute()
	}

	test.ExpectSuccess(t, srFlag(v))
	test.ExpectEquality(t, v.Read(reg(addresses.SR)), value)
}

func TestShiftOutTimer2(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.ACR), 0x14)
	v.Write(reg(addresses.T2CL), 0x02)
	v.Write(reg(addresses.SR), 0xff)

	// the shift clock toggles every T2CL+1 cycles so a bit is shifted every
	// 2*(T2CL+1) cycles
	for i := 0; i < 45; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 7)
	test.ExpectFailure(t, srFlag(v))

	v.Execute()
	test.ExpectSuccess(t, srFlag(v))
}

func TestShiftOutFreeRunning(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.ACR), 0x10)
	v.Write(reg(addresses.SR), 0x81)

	// 13 complete rotations
	for i := 0; i < 13*16; i++ {
		v.Execute()
	}
	test.ExpectFailure(t, srFlag(v))
	test.ExpectSuccess(t, v.GetShiftRegister().Enabled)
	test.ExpectEquality(t, v.GetRegisterState().SR, 0x81)
}

func TestShiftExternal(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.ACR), 0x1c)
	v.Write(reg(addresses.SR), 0x80)

	// nothing happens without an external clock
	for i := 0; i < 32; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 0)

	v.SetCB1(true)
	v.SetCB1(false)
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 1)
	test.ExpectSuccess(t, v.Lines().CB2)
	test.ExpectFailure(t, v.Lines().CB1)

	for i := 0; i < 7; i++ {
		v.SetCB1(true)
		v.SetCB1(false)
	}
	test.ExpectSuccess(t, srFlag(v))
	test.ExpectEquality(t, v.Read(reg(addresses.SR)), 0x80)
}

func TestShiftDisabled(t *testing.T) {
	v := via.NewVIA(nil)
	v.Write(reg(addresses.SR), 0x55)
	for i := 0; i < 32; i++ {
		v.Execute()
	}
	test.ExpectEquality(t, v.GetShiftRegister().Shifted, 0)
	test.ExpectEquality(t, v.GetRegisterState().SR, 0x55)
}
