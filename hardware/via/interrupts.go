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

import "github.com/vectrexia/vectrexia/hardware/via/control"

// setIFR sets or clears the flags in the mask. the IRQ bit in the mask is
// ignored and recalculated
func (v *VIA) setIFR(mask control.InterruptFlags, set bool) {
	mask &= control.FlagSources
	if set {
		v.regs.IFR |= mask
	} else {
		v.regs.IFR &^= mask
	}
	v.updateIRQ()
}

// setIER sets or clears the enable bits in the mask
func (v *VIA) setIER(mask control.InterruptFlags, set bool) {
	mask &= control.FlagSources
	if set {
		v.regs.IER |= mask
	} else {
		v.regs.IER &^= mask
	}
	v.updateIRQ()
}

func (v *VIA) updateIRQ() {
	if v.regs.IFR.Pending(v.regs.IER) != 0 {
		v.regs.IFR |= control.FlagIRQ
	} else {
		v.regs.IFR &^= control.FlagIRQ
	}
}

// GetIRQ returns bit 7 of the IFR. The value is non-zero if there is an
// enabled interrupt pending.
func (v *VIA) GetIRQ() uint8 {
	return uint8(v.regs.IFR & control.FlagIRQ)
}
