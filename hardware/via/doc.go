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

// Package via implements the MOS 6522 Versatile Interface Adapter as it is
// wired into the Vectrex. The chip has two 8-bit ports, two 16-bit timers, an
// 8-bit shift register and an interrupt controller.
//
// The VIA is driven by the owning bus and scheduler. The bus calls Read() and
// Write() when the CPU addresses the chip and the scheduler calls Execute()
// exactly once per cycle. Nothing in the package runs concurrently and none of
// the functions block.
//
// Peripherals are attached with the callback setters. Port readers supply the
// input bits of a port and the update function is called at the end of every
// cycle with the state of the output lines:
//
//	v := via.NewVIA(env)
//	v.SetPortAReadCallback(func(ddr, output uint8) uint8 {
//		return joystick
//	})
//	v.SetUpdateCallback(func(ora, portB uint8, ca1, ca2, cb1, cb2 bool) {
//		// drive DAC and vector hardware
//	})
//
// Callbacks are called synchronously and must not call back into the VIA.
package via
