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

package script

import (
	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/curated"
	"github.com/vectrexia/vectrexia/environment"
	"github.com/vectrexia/vectrexia/hardware/via"
	"github.com/vectrexia/vectrexia/logger"
	lua "github.com/yuin/gopher-lua"
)

// names of the script functions
const (
	fnPortA  = "porta"
	fnPortB  = "portb"
	fnUpdate = "update"
)

// Peripheral is a VIA peripheral implemented by a Lua script.
type Peripheral struct {
	env *environment.Environment
	L   *lua.LState

	portA  *lua.LFunction
	portB  *lua.LFunction
	update *lua.LFunction

	// first error raised by a script function
	err error
}

// Load reads a script from the filesystem.
func Load(env *environment.Environment, fs afero.Fs, path string) (*Peripheral, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, curated.Errorf("script: %v", err)
	}
	return NewPeripheral(env, string(src))
}

// NewPeripheral is the preferred method of initialisation for the Peripheral
// type.
func NewPeripheral(env *environment.Environment, src string) (*Peripheral, error) {
	p := &Peripheral{
		env: env,
		L:   lua.NewState(),
	}

	p.L.SetGlobal("log", p.L.NewFunction(func(L *lua.LState) int {
		logger.Log(p.env, "script", L.CheckString(1))
		return 0
	}))

	err := p.L.DoString(src)
	if err != nil {
		p.L.Close()
		return nil, curated.Errorf("script: %v", err)
	}

	p.portA = p.function(fnPortA)
	p.portB = p.function(fnPortB)
	p.update = p.function(fnUpdate)

	if p.portA == nil && p.portB == nil && p.update == nil {
		p.L.Close()
		return nil, curated.Errorf("script: %v", "no peripheral functions defined")
	}

	return p, nil
}

func (p *Peripheral) function(name string) *lua.LFunction {
	if fn, ok := p.L.GetGlobal(name).(*lua.LFunction); ok {
		return fn
	}
	return nil
}

// Close the Lua state. The peripheral must not be used after this.
func (p *Peripheral) Close() {
	p.L.Close()
}

// Err returns the first error raised by a script function.
func (p *Peripheral) Err() error {
	return p.err
}

// Attach sets the VIA callbacks for the functions defined by the script. The
// callbacks for functions that are not defined are left unchanged.
func (p *Peripheral) Attach(v *via.VIA) {
	if p.portA != nil {
		v.SetPortAReadCallback(func(ddr, output uint8) uint8 {
			return p.readPort(p.portA, ddr, output)
		})
	}
	if p.portB != nil {
		v.SetPortBReadCallback(func(ddr, output uint8) uint8 {
			return p.readPort(p.portB, ddr, output)
		})
	}
	if p.update != nil {
		v.SetUpdateCallback(p.Update)
	}
}

func (p *Peripheral) call(fn *lua.LFunction, nret int, args ...lua.LValue) bool {
	if p.err != nil {
		return false
	}

	err := p.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    nret,
		Protect: true,
	}, args...)
	if err != nil {
		p.err = curated.Errorf("script: %v", err)
		logger.Log(p.env, "script", p.err)
		return false
	}

	return true
}

func (p *Peripheral) readPort(fn *lua.LFunction, ddr, output uint8) uint8 {
	if !p.call(fn, 1, lua.LNumber(ddr), lua.LNumber(output)) {
		return 0
	}
	ret := p.L.Get(-1)
	p.L.Pop(1)
	return uint8(int(lua.LVAsNumber(ret)))
}

// Update calls the script's update function. It has the signature of
// via.UpdateFunc.
func (p *Peripheral) Update(ora uint8, portB uint8, ca1, ca2, cb1, cb2 bool) {
	if p.update == nil {
		return
	}
	p.call(p.update, 0,
		lua.LNumber(ora), lua.LNumber(portB),
		lua.LBool(ca1), lua.LBool(ca2), lua.LBool(cb1), lua.LBool(cb2),
	)
}
