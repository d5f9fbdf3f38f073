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
	"io"

	"github.com/rs/zerolog"
)

// Controller drives the three counters of one TTC block as PWM
// channels. It owns the register window and the per-channel clocks;
// registers are authoritative and rewritten from scratch on every
// Configure, so no shadow state survives a restart.
type Controller struct {
	mem      Mem32
	sysClk   Clock
	log      zerolog.Logger
	channels [NumChannels]*Channel
}

// Open binds a controller to the resources in the configuration. The
// system clock is enabled here and stays enabled until Close. Each
// channel's clock-source identity is resolved once: a channel clock
// that is the system clock counts from the internal bus clock,
// anything else from the external clock input. Polarity starts as
// PolarityNormal on every channel; counter parameters are undefined
// until the first Configure.
func Open(cfg *Config) (*Controller, error) {
	if cfg.mem == nil {
		return nil, fmt.Errorf("%w: no register window", ErrInvalidArgument)
	}
	if cfg.sysClk == nil {
		return nil, fmt.Errorf("%w: no system clock", ErrInvalidArgument)
	}
	if err := cfg.sysClk.Enable(); err != nil {
		return nil, fmt.Errorf("system clock: %w: %v", ErrClockUnavailable, err)
	}
	c := &Controller{
		mem:    cfg.mem,
		sysClk: cfg.sysClk,
		log:    cfg.log,
	}
	for i := 0; i < NumChannels; i++ {
		clk := cfg.clks[i]
		if clk == nil {
			clk = cfg.sysClk
		}
		c.channels[i] = &Channel{
			ctrl:     c,
			index:    i,
			clk:      clk,
			external: clk != cfg.sysClk,
			polarity: PolarityNormal,
		}
	}
	c.log.Debug().Msg("ttc pwm controller open")
	return c, nil
}

// Channel returns the PWM channel with the given index.
func (c *Controller) Channel(n int) *Channel {
	return c.channels[n]
}

// Close stops every channel, releases the clocks and, if the register
// window implements io.Closer, unmaps it. The controller must not be
// used afterwards.
func (c *Controller) Close() error {
	for _, ch := range c.channels {
		ch.Disable()
	}
	c.sysClk.Disable()
	c.log.Debug().Msg("ttc pwm controller closed")
	if cl, ok := c.mem.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// rd reads one register, tracing the access.
func (c *Controller) rd(channel int, reg register) uint32 {
	v := c.mem.Read32(regAddr(channel, reg))
	c.log.Debug().Str("value", fmt.Sprintf("%08x", v)).Int("channel", channel).
		Str("register", registerNames[reg]).Msg("read")
	return v
}

// wr writes one register, tracing the access.
func (c *Controller) wr(channel int, reg register, value uint32) {
	c.log.Debug().Str("value", fmt.Sprintf("%08x", value)).Int("channel", channel).
		Str("register", registerNames[reg]).Msg("write")
	c.mem.Write32(regAddr(channel, reg), value)
}
