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

import "fmt"

// Polarity selects whether the generated waveform is active-high
// (normal) or active-low (inverted) relative to the match event.
type Polarity int

const (
	PolarityNormal Polarity = iota
	PolarityInverted
)

// Channel drives one counter of the TTC as a PWM output.
//
// The caller is responsible for serialising calls on the same channel.
// Calls on distinct channels touch distinct registers and clocks and
// may proceed concurrently.
type Channel struct {
	ctrl     *Controller
	index    int
	clk      Clock
	external bool // clock feeds the counter's ext_clk input
	polarity Polarity
	last     waveform
}

// Configure programs the channel for the requested period and duty
// cycle, as closely as the 16 bit counter and available prescaler
// steps allow. The channel's enabled/disabled status is not changed: a
// running channel keeps running with the new parameters, a stopped one
// stays stopped. The counter is quiesced while its thresholds are
// rewritten so a live count can never match a half-updated threshold.
//
// On failure (ErrInvalidArgument, ErrClockUnavailable) no register has
// been written and the previous configuration remains in effect.
func (ch *Channel) Configure(dutyNs, periodNs int64) error {
	if err := ch.clk.Enable(); err != nil {
		return fmt.Errorf("channel %d: %w: %v", ch.index, ErrClockUnavailable, err)
	}
	w, err := computeWaveform(ch.clk.Rate(), dutyNs, periodNs)
	if err != nil {
		return fmt.Errorf("channel %d: %w", ch.index, err)
	}

	// Stop the counter before touching its thresholds.
	counterCtrl := ch.rd(regCounterCtrl)
	ch.wr(regCounterCtrl, counterCtrl|cntDisable)

	x := ch.rd(regClockCtrl)
	x &^= clkPrescaleEnable | clkPrescaleMask
	x |= w.prescaleBits()
	// The whole prescale field was just cleared, so the source
	// select bit is re-applied from the channel's fixed identity.
	if ch.external {
		x |= clkSrcExternal
	} else {
		x &^= clkSrcExternal
	}
	ch.wr(regClockCtrl, x)

	ch.wr(regInterval, uint32(w.interval))
	ch.wr(regMatch1, uint32(w.match))

	// Restore the counter in one write: count up, interval mode,
	// match enabled, synchronous reset, latched polarity.
	counterCtrl &^= cntDecrement
	counterCtrl |= cntIntervalEnable | cntReset | cntMatchEnable
	if ch.polarity == PolarityNormal {
		counterCtrl |= cntWavePolarity
	} else {
		counterCtrl &^= cntWavePolarity
	}
	ch.wr(regCounterCtrl, counterCtrl)

	ch.last = w
	ch.ctrl.log.Debug().Int("channel", ch.index).Uint16("interval", w.interval).
		Uint16("match", w.match).Int("prescaler", w.prescaler).Msg("configured")
	return nil
}

// Enable starts the counter and waveform output, reloading the count
// from zero on the next tick. Idempotent.
func (ch *Channel) Enable() error {
	if err := ch.clk.Enable(); err != nil {
		return fmt.Errorf("channel %d: %w: %v", ch.index, ErrClockUnavailable, err)
	}
	x := ch.rd(regCounterCtrl)
	x &^= cntDisable | cntWaveDisable
	x |= cntReset
	ch.wr(regCounterCtrl, x)
	return nil
}

// Disable stops the counter and waveform output and releases the
// channel's clock. Safe to call on an already disabled channel.
func (ch *Channel) Disable() {
	x := ch.rd(regCounterCtrl)
	x |= cntDisable | cntWaveDisable
	ch.wr(regCounterCtrl, x)
	ch.clk.Disable()
}

// SetPolarity latches the waveform polarity for the channel. No
// register is touched: the TTC only allows the polarity to change
// while the waveform mode is being reprogrammed, so the new value
// takes effect on the next Configure.
func (ch *Channel) SetPolarity(p Polarity) {
	ch.polarity = p
}

// Counter returns the live counter value, for debugging.
func (ch *Channel) Counter() uint16 {
	return uint16(ch.rd(regCounterValue))
}

func (ch *Channel) rd(reg register) uint32 {
	return ch.ctrl.rd(ch.index, reg)
}

func (ch *Channel) wr(reg register, value uint32) {
	ch.ctrl.wr(ch.index, reg, value)
}
