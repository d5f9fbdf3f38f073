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

// Mem32 is the access contract for the TTC register window. Offsets are
// byte offsets from the base of the window and must be word aligned.
// Every call corresponds to one physical bus access; implementations
// must not cache, merge or reorder accesses. A failed physical access
// is a hardware fault outside this package's error model.
type Mem32 interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, value uint32)
}

// MemBuffer is a RAM backed Mem32 covering one TTC register window.
// It is used to simulate the hardware in tests, or by callers that
// bring their own bus bridge and copy register state through it.
type MemBuffer struct {
	words [RegWindowSize / 4]uint32
}

// NewMemBuffer returns a MemBuffer with all registers zeroed, which is
// the TTC reset state except for COUNTER_CTRL (see Reset).
func NewMemBuffer() *MemBuffer {
	m := new(MemBuffer)
	m.Reset()
	return m
}

// Reset restores the power-on register values. The TTC comes out of
// reset with all counters stopped and waveform output disabled.
func (m *MemBuffer) Reset() {
	for i := range m.words {
		m.words[i] = 0
	}
	for c := 0; c < NumChannels; c++ {
		m.words[regAddr(c, regCounterCtrl)/4] = cntDisable | cntWaveDisable
	}
}

func (m *MemBuffer) Read32(offset uint32) uint32 {
	return m.words[offset/4]
}

func (m *MemBuffer) Write32(offset uint32, value uint32) {
	m.words[offset/4] = value
}
