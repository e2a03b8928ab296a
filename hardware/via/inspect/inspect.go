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

// Package inspect draws the internal state of the VIA as a graphviz diagram.
// The output of Diagram() can be rendered with the dot command:
//
//	dot -Tsvg via.dot > via.svg
package inspect

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/vectrexia/vectrexia/hardware/via"
)

// State collates the inspectable parts of the VIA.
type State struct {
	Registers     via.Registers
	Lines         via.Lines
	Timer1        *via.Timer
	Timer2        *via.Timer
	ShiftRegister *via.ShiftRegister
	Clock         uint64
}

// NewState takes a copy of the VIA state. The VIA is not affected.
func NewState(v *via.VIA) *State {
	s := v.Snapshot()
	return &State{
		Registers:     s.GetRegisterState(),
		Lines:         s.Lines(),
		Timer1:        s.GetTimer1(),
		Timer2:        s.GetTimer2(),
		ShiftRegister: s.GetShiftRegister(),
		Clock:         s.Clock(),
	}
}

// Diagram writes a graphviz representation of the VIA state to w.
func Diagram(w io.Writer, v *via.VIA) {
	memviz.Map(w, NewState(v))
}
