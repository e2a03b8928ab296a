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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/curated"
	"github.com/vectrexia/vectrexia/environment"
	"github.com/vectrexia/vectrexia/hardware/via"
	"github.com/vectrexia/vectrexia/hardware/via/inspect"
	"github.com/vectrexia/vectrexia/hardware/via/script"
	"github.com/vectrexia/vectrexia/logger"
	"github.com/vectrexia/vectrexia/modalflag"
	"github.com/vectrexia/vectrexia/prefs"
	"github.com/vectrexia/vectrexia/wavwriter"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, afero.NewOsFs()))
}

// launch returns the value to be used with os.Exit()
func launch(args []string, output io.Writer, fs afero.Fs) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "INSPECT")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, fs)
	case "INSPECT":
		err = inspectVIA(md, output, fs)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags shared by all modes
type common struct {
	cycles *int
	log    *bool
	prefs  *string
}

func addCommonFlags(md *modalflag.Modes) common {
	return common{
		cycles: md.AddInt("cycles", 1500000, "number of VIA cycles to run"),
		log:    md.AddBool("log", false, "echo log to stdout"),
		prefs:  md.AddString("prefs", "", "preferences for this session. eg. 'hardware.via.capture.rate::8'"),
	}
}

// create the environment and a VIA with the peripheral script attached. the
// script argument is optional
func setup(md *modalflag.Modes, c common, output io.Writer, fs afero.Fs) (*environment.Environment, *via.VIA, *script.Peripheral, error) {
	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		defer prefs.PopCommandLineStack()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, fs, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	if *c.log {
		err = env.Prefs.Logging.Set(true)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.SetEcho(output, false)
	}

	v := via.NewVIA(env)

	var p *script.Peripheral

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		p, err = script.Load(env, fs, md.GetArg(0))
		if err != nil {
			return nil, nil, nil, err
		}
		p.Attach(v)
	default:
		return nil, nil, nil, curated.Errorf("too many arguments for %s mode", md)
	}

	return env, v, p, nil
}

func runCycles(v *via.VIA, p *script.Peripheral, cycles int) error {
	for i := 0; i < cycles; i++ {
		v.Execute()
		if p != nil && p.Err() != nil {
			return p.Err()
		}
	}
	return nil
}

func run(md *modalflag.Modes, output io.Writer, fs afero.Fs) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script implementing the peripherals attached to the VIA.")

	c := addCommonFlags(md)
	wav := md.AddString("wav", "", "record VIA output to WAV file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, v, scr, err := setup(md, c, output, fs)
	if err != nil {
		return err
	}
	if scr != nil {
		defer scr.Close()
	}

	var lc *wavwriter.LineCapture
	if *wav != "" {
		lc, err = wavwriter.NewLineCapture(env, fs, *wav)
		if err != nil {
			return err
		}

		// the script's update function must still be called
		if scr != nil {
			v.SetUpdateCallback(func(ora uint8, portB uint8, ca1, ca2, cb1, cb2 bool) {
				scr.Update(ora, portB, ca1, ca2, cb1, cb2)
				lc.Update(ora, portB, ca1, ca2, cb1, cb2)
			})
		} else {
			v.SetUpdateCallback(lc.Update)
		}
	}

	err = runCycles(v, scr, *c.cycles)
	if err != nil {
		return err
	}

	if lc != nil {
		err = lc.EndCapture()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(output, v.GetRegisterState())
	fmt.Fprintln(output, v)

	return nil
}

func inspectVIA(md *modalflag.Modes, output io.Writer, fs afero.Fs) error {
	md.NewMode()
	md.AdditionalHelp("Writes a graphviz diagram of the VIA state after the number of cycles.")

	c := addCommonFlags(md)
	dot := md.AddString("dot", "", "write diagram to file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, v, scr, err := setup(md, c, output, fs)
	if err != nil {
		return err
	}
	if scr != nil {
		defer scr.Close()
	}

	err = runCycles(v, scr, *c.cycles)
	if err != nil {
		return err
	}

	if *dot == "" {
		inspect.Diagram(output, v)
		return nil
	}

	f, err := fs.Create(*dot)
	if err != nil {
		return err
	}
	defer f.Close()
	inspect.Diagram(f, v)

	return nil
}
