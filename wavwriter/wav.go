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

// Package wavwriter records the output lines of the VIA as a multi-channel
// WAV file. The first channel is the A output register, which in the Vectrex
// drives the DAC, the second is port B and the third is the four handshake
// lines. A WAV file is useful because it can be examined in any audio editor.
//
// Samples are buffered in memory in their entirety and written to disk when
// EndCapture() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"
	"github.com/vectrexia/vectrexia/curated"
	"github.com/vectrexia/vectrexia/environment"
	"github.com/vectrexia/vectrexia/hardware/preferences"
	"github.com/vectrexia/vectrexia/logger"
)

// ClockRate is the number of VIA cycles per second in the Vectrex.
const ClockRate = 1500000

// NumChannels is the number of channels in the WAV file.
const NumChannels = 3

// bits in the line channel
const (
	lineCA1 = 0x01
	lineCA2 = 0x02
	lineCB1 = 0x04
	lineCB2 = 0x08
)

// LineCapture records VIA output. The Update() function has the signature of
// via.UpdateFunc.
type LineCapture struct {
	env      *environment.Environment
	fs       afero.Fs
	filename string

	// number of VIA cycles per sample
	rate  int
	count int

	buffer []int
}

// NewLineCapture is the preferred method of initialisation for the LineCapture
// type. The sample rate is taken from the capture rate preference in the
// environment.
func NewLineCapture(env *environment.Environment, fs afero.Fs, filename string) (*LineCapture, error) {
	lc := &LineCapture{
		env:      env,
		fs:       fs,
		filename: filename,
		rate:     preferences.DefaultCaptureRate,
		buffer:   make([]int, 0),
	}

	if env != nil && env.Prefs != nil {
		lc.rate = env.Prefs.CaptureRate.Get().(int)
	}
	if lc.rate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "capture rate must be positive")
	}

	return lc, nil
}

// SampleRate returns the sample rate of the WAV file.
func (lc *LineCapture) SampleRate() int {
	return ClockRate / lc.rate
}

// NumSamples returns the number of samples recorded so far.
func (lc *LineCapture) NumSamples() int {
	return len(lc.buffer) / NumChannels
}

// Update records one cycle of VIA output.
func (lc *LineCapture) Update(ora uint8, portB uint8, ca1, ca2, cb1, cb2 bool) {
	lc.count--
	if lc.count > 0 {
		return
	}
	lc.count = lc.rate

	var lines int
	if ca1 {
		lines |= lineCA1
	}
	if ca2 {
		lines |= lineCA2
	}
	if cb1 {
		lines |= lineCB1
	}
	if cb2 {
		lines |= lineCB2
	}

	// the DAC value is signed and 8-bit WAV samples are unsigned
	lc.buffer = append(lc.buffer, int(ora^0x80), int(portB), lines)
}

// Reset discards all recorded samples.
func (lc *LineCapture) Reset() {
	lc.buffer = lc.buffer[:0]
	lc.count = 0
}

// EndCapture writes the recorded samples to the file.
func (lc *LineCapture) EndCapture() (rerr error) {
	f, err := lc.fs.Create(lc.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, lc.SampleRate(), 8, NumChannels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  lc.SampleRate(),
		},
		Data:           lc.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(lc.env, "wavwriter", "writing %d samples to %s", lc.NumSamples(), lc.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
