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

// Package control types the bit fields of the three control registers of the
// 6522 VIA: the auxiliary control register (ACR), the peripheral control
// register (PCR) and the interrupt flag/enable registers (IFR and IER).
//
// The raw mask constants use the bit positions of the real chip and can be
// applied directly to register values. The ACR and PCR types decode the same
// bits into mode values that implement fmt.Stringer, which is useful when
// logging or presenting the state of the chip.
package control
