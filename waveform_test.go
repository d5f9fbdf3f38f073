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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

func TestComputeWaveform(t *testing.T) {
	data := []struct {
		name      string
		rate      physic.Frequency
		dutyNs    int64
		periodNs  int64
		prescaler int
		interval  uint16
		match     uint16
	}{
		{
			// Typical servo pulse: 20ms period, 1.5ms duty at
			// 50MHz. 1e6 period clocks need 20 bits, so 4 bits
			// are prescaled away.
			name: "servo", rate: 50 * physic.MegaHertz,
			dutyNs: 1500000, periodNs: 20000000,
			prescaler: 4, interval: 62500, match: 4687,
		},
		{
			// Fits the counter exactly: no prescaler, no loss.
			name: "exact 16 bit", rate: 1 * physic.MegaHertz,
			dutyNs: 32767500, periodNs: 65535000,
			prescaler: 0, interval: 65535, match: 32767,
		},
		{
			name: "one over 16 bit", rate: 1 * physic.MegaHertz,
			dutyNs: 0, periodNs: 65536000,
			prescaler: 1, interval: 32768, match: 0,
		},
		{
			name: "small period", rate: 50 * physic.MegaHertz,
			dutyNs: 10000, periodNs: 20000,
			prescaler: 0, interval: 1000, match: 500,
		},
		{
			name: "zero period", rate: 50 * physic.MegaHertz,
			dutyNs: 0, periodNs: 0,
			prescaler: 0, interval: 0, match: 0,
		},
		{
			name: "full duty", rate: 1 * physic.MegaHertz,
			dutyNs: 1000000, periodNs: 1000000,
			prescaler: 0, interval: 1000, match: 1000,
		},
	}
	for _, line := range data {
		line := line
		t.Run(line.name, func(t *testing.T) {
			w, err := computeWaveform(line.rate, line.dutyNs, line.periodNs)
			require.NoError(t, err)
			assert.Equal(t, line.prescaler, w.prescaler, "prescaler")
			assert.Equal(t, line.interval, w.interval, "interval")
			assert.Equal(t, line.match, w.match, "match")
		})
	}
}

func TestComputeWaveformRejects(t *testing.T) {
	_, err := computeWaveform(50*physic.MegaHertz, 0, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = computeWaveform(50*physic.MegaHertz, -1, 1000)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// The chosen prescaler exponent must be the smallest that brings the
// period into the 16 bit counter range.
func TestPrescalerMinimal(t *testing.T) {
	clocks := []uint64{
		1, 2, 1000, 65534, 65535, 65536, 65537, 1 << 17,
		(1 << 20) - 1, 1 << 20, 123456789, (1 << 31) - 1, 1 << 31, 1 << 33,
	}
	for _, pc := range clocks {
		pc := pc
		t.Run(fmt.Sprintf("%d", pc), func(t *testing.T) {
			// At 1GHz one nanosecond is one clock, so the tick
			// count equals the requested period.
			w, err := computeWaveform(1*physic.GigaHertz, 0, int64(pc))
			require.NoError(t, err)
			e := uint(w.prescaler)
			assert.LessOrEqual(t, pc>>e, uint64(65535))
			if e > 0 {
				assert.Greater(t, pc>>(e-1), uint64(65535))
			}
			// No prescaler: the interval must be the exact tick
			// count.
			if e == 0 {
				assert.Equal(t, uint16(pc), w.interval)
			}
		})
	}
}

func TestPrescaleBits(t *testing.T) {
	assert.Equal(t, uint32(0), waveform{prescaler: 0}.prescaleBits())
	// Exponent 1 is the minimum enabled division (by 2), code 0.
	assert.Equal(t, uint32(clkPrescaleEnable), waveform{prescaler: 1}.prescaleBits())
	// Servo case: exponent 4, divide by 16, code 3.
	assert.Equal(t, uint32(clkPrescaleEnable|3<<clkPrescaleShift), waveform{prescaler: 4}.prescaleBits())
	// Largest expressible division.
	assert.Equal(t, uint32(clkPrescaleEnable|15<<clkPrescaleShift), waveform{prescaler: 16}.prescaleBits())
}
