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

import "periph.io/x/conn/v3/physic"

// Clock models the clock feeding one TTC counter. Implementations wrap
// whatever the platform provides (a common-clock-framework handle, a
// fixed oscillator, a fabric clock).
//
// A channel whose Clock is the same value as the controller's system
// clock counts from the internal bus clock; any other Clock is treated
// as a dedicated source wired to the counter's ext_clk input, and the
// clock-source-select bit is programmed accordingly on every configure.
type Clock interface {
	// Enable prepares and ungates the clock. It is idempotent and
	// may be called on a clock that is already running.
	Enable() error
	// Disable gates the clock again. Calls are balanced against
	// Enable by the controller, never nested.
	Disable()
	// Rate returns the current clock frequency. It is re-read on
	// every configure so an externally retuned clock is picked up.
	Rate() physic.Frequency
}

// FixedClock is a Clock with a constant rate and no hardware behind
// it. It suits platforms where the TTC input clock is a fixed PLL
// output known at build time, and doubles as a test clock: setting
// Err makes Enable fail.
type FixedClock struct {
	Hz  physic.Frequency
	Err error

	enables  int
	disables int
}

// NewFixedClock returns a clock reporting the given fixed rate.
func NewFixedClock(hz physic.Frequency) *FixedClock {
	return &FixedClock{Hz: hz}
}

func (c *FixedClock) Enable() error {
	if c.Err != nil {
		return c.Err
	}
	c.enables++
	return nil
}

func (c *FixedClock) Disable() {
	c.disables++
}

func (c *FixedClock) Rate() physic.Frequency {
	return c.Hz
}
