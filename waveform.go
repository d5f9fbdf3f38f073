// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ttcpwm

import (
	"fmt"
	"math/bits"

	"periph.io/x/conn/v3/physic"
)

// waveform holds the counter parameters derived from one configure
// request: the prescaler exponent and the 16 bit interval and match
// thresholds.
type waveform struct {
	prescaler int // exponent e; the counter clock is divided by 2^e
	interval  uint16
	match     uint16
}

// computeWaveform translates a requested period and duty cycle in
// nanoseconds into counter parameters for the given clock rate.
//
// The period is first converted to clock ticks with 64 bit arithmetic.
// The counter is 16 bits wide, so the prescaler exponent is the number
// of bits of period_clocks beyond 16: the smallest power-of-two divide
// that brings the tick count into counter range, keeping the finest
// resolution the hardware allows. Thresholds that still do not fit
// after shifting are truncated to 16 bits, matching the hardware field
// width; such a request produces a shorter period than asked for. This
// is the precision ceiling of the TTC, not an error.
func computeWaveform(rate physic.Frequency, dutyNs, periodNs int64) (waveform, error) {
	if periodNs < 0 {
		return waveform{}, fmt.Errorf("%w: period %dns is negative", ErrInvalidArgument, periodNs)
	}
	if dutyNs < 0 {
		return waveform{}, fmt.Errorf("%w: duty %dns is negative", ErrInvalidArgument, dutyNs)
	}
	hz := uint64(rate / physic.Hertz)
	periodClocks := uint64(periodNs) * hz / 1000000000
	dutyClocks := uint64(dutyNs) * hz / 1000000000

	// bits.Len64 is floor(log2(n))+1 for n > 0, the number of bits
	// needed to hold periodClocks.
	e := bits.Len64(periodClocks) - 16
	if e < 0 {
		e = 0
	}
	return waveform{
		prescaler: e,
		interval:  uint16(periodClocks >> uint(e)),
		match:     uint16(dutyClocks >> uint(e)),
	}, nil
}

// prescaleBits returns the CLK_CTRL prescaler field for the waveform.
// An exponent of 0 disables the prescaler entirely; otherwise the
// hardware divides by 2^(code+1), so the code is exponent-1.
func (w waveform) prescaleBits() uint32 {
	if w.prescaler == 0 {
		return 0
	}
	return clkPrescaleEnable | (uint32(w.prescaler-1)<<clkPrescaleShift)&clkPrescaleMask
}
