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

import "github.com/rs/zerolog"

// Config assembles the resources a controller needs. A configuration
// is initialised through chained methods e.g:
//
//	mem, _ := ttcpwm.OpenDevMem(0xF8001000)
//	clk := ttcpwm.NewFixedClock(111 * physic.MegaHertz)
//	c, err := ttcpwm.Open(ttcpwm.NewConfig().Mem(mem).SystemClock(clk))
//
// The register window and system clock are mandatory. Channels without
// a dedicated clock run from the system clock.
type Config struct {
	mem    Mem32
	sysClk Clock
	clks   [NumChannels]Clock
	log    zerolog.Logger
}

// NewConfig creates an empty Config. Logging defaults to a no-op sink.
func NewConfig() *Config {
	c := new(Config)
	c.log = zerolog.Nop()
	return c
}

// Mem sets the register window the controller drives.
func (c *Config) Mem(m Mem32) *Config {
	c.mem = m
	return c
}

// SystemClock sets the bus clock. It is enabled for the lifetime of
// the controller and is the default counter clock for every channel.
func (c *Config) SystemClock(clk Clock) *Config {
	c.sysClk = clk
	return c
}

// ChannelClock gives channel n a dedicated clock. A dedicated clock is
// assumed to be wired to the counter's ext_clk input, and the channel
// is programmed to count from the external source. Passing the system
// clock itself keeps the channel on the internal source.
func (c *Config) ChannelClock(n int, clk Clock) *Config {
	c.clks[n%NumChannels] = clk
	return c
}

// Logger sets the diagnostic sink. Every register access is traced at
// debug level with the channel and symbolic register name.
func (c *Config) Logger(l zerolog.Logger) *Config {
	c.log = l
	return c
}
