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

// Package script attaches a peripheral written in Lua to the VIA. The script
// can define any of the following global functions:
//
//	function porta(ddr, output) return value end
//	function portb(ddr, output) return value end
//	function update(ora, portb, ca1, ca2, cb1, cb2) end
//
// porta() and portb() supply the input bits of the ports and update() is
// called once per cycle with the state of the output lines. The handshake
// lines are passed as booleans.
//
// Scripts can call log(message) to make an entry in the central log. Logging
// is subject to the same preference as the VIA.
//
// An error in a script function is recorded and the peripheral stops calling
// into the script. The error can be retrieved with Err().
package script
