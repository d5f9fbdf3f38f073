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

// NumChannels is the number of counters in one TTC block.
const NumChannels = 3

// register identifies one of the per-channel register kinds of the TTC
// (UG585 section 8.5). The registers for the three channels are
// interleaved word by word, so consecutive kinds are 12 bytes apart.
type register int

const (
	regClockCtrl register = iota
	regCounterCtrl
	regCounterValue
	regInterval
	regMatch1
	regMatch2
	regMatch3
	regInterruptStatus
	regInterruptEnable
	regEventCtrl
	regEvent
	nRegisters
)

// registerNames maps a register kind to the name used in the TRM.
// Used only for the register access trace.
var registerNames = [nRegisters]string{
	regClockCtrl:       "CLK_CTRL",
	regCounterCtrl:     "COUNTER_CTRL",
	regCounterValue:    "COUNTER_VALUE",
	regInterval:        "INTERVAL_COUNTER",
	regMatch1:          "MATCH_1_COUNTER",
	regMatch2:          "MATCH_2_COUNTER",
	regMatch3:          "MATCH_3_COUNTER",
	regInterruptStatus: "INTERRUPT_REGISTER",
	regInterruptEnable: "INTERRUPT_ENABLE",
	regEventCtrl:       "EVENT_CONTROL_TIMER",
	regEvent:           "EVENT_REGISTER",
}

// Clock control register bits.
const (
	clkFallingEdge    = 0x40
	clkSrcExternal    = 0x20
	clkPrescaleShift  = 1
	clkPrescaleMask   = 0xF << clkPrescaleShift
	clkPrescaleEnable = 0x1
)

// Counter control register bits.
const (
	cntWavePolarity   = 0x40
	cntWaveDisable    = 0x20
	cntReset          = 0x10
	cntMatchEnable    = 0x08
	cntDecrement      = 0x04
	cntIntervalEnable = 0x02
	cntDisable        = 0x01
)

// RegWindowSize is the size in bytes of the TTC register window.
const RegWindowSize = 4 * NumChannels * int(nRegisters)

// regAddr returns the byte offset of a register within the TTC window.
// The layout is word addressed and channel interleaved.
func regAddr(channel int, reg register) uint32 {
	return uint32(4 * (NumChannels*int(reg) + channel))
}
