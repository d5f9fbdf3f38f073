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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegAddr(t *testing.T) {
	// Word addressed, channel interleaved: the three channels'
	// copies of a register are adjacent words.
	data := []struct {
		channel int
		reg     register
		offset  uint32
	}{
		{0, regClockCtrl, 0x00},
		{1, regClockCtrl, 0x04},
		{2, regClockCtrl, 0x08},
		{0, regCounterCtrl, 0x0C},
		{1, regInterval, 0x28},
		{0, regMatch1, 0x30},
		{2, regEvent, 0x80},
	}
	for _, line := range data {
		assert.Equal(t, line.offset, regAddr(line.channel, line.reg),
			"channel %d %s", line.channel, registerNames[line.reg])
	}
}

func TestRegAddrNoAliasing(t *testing.T) {
	seen := make(map[uint32]bool)
	for c := 0; c < NumChannels; c++ {
		for r := register(0); r < nRegisters; r++ {
			offs := regAddr(c, r)
			assert.False(t, seen[offs], "offset 0x%x aliased", offs)
			assert.Less(t, int(offs), RegWindowSize)
			seen[offs] = true
		}
	}
}

func TestRegisterNames(t *testing.T) {
	for r := register(0); r < nRegisters; r++ {
		assert.NotEmpty(t, registerNames[r], "register %d unnamed", r)
	}
}
