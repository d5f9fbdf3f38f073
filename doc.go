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

/*

Package ttcpwm drives the Cadence Triple Timer Counter (TTC) found in the
Xilinx Zynq-7000 (https://www.xilinx.com/products/silicon-devices/soc/zynq-7000.html)
as a three channel PWM generator.

Each of the TTC's three 16 bit counters is run in interval mode: the
counter free-runs between 0 and a programmable interval value, and a
match register toggles the waveform output to produce the duty cycle
edge. Given a period and duty cycle in nanoseconds, the package derives
a power-of-two prescaler and the interval and match thresholds that
reproduce the waveform as closely as the 16 bit counter and the input
clock rate allow, picking the smallest prescaler that keeps the period
in counter range. Requests beyond the reachable range are truncated to
the hardware field width rather than rejected.

The package binds an already mapped register window (OpenDevMem maps one
through /dev/mem on Linux) and caller supplied clocks; it does not do
platform discovery, and the interrupt and event-counter modes of the
TTC are not modeled.

Register layout and counter behaviour follow the Zynq-7000 TRM [UG585]
section 8.5, and the Xilinx bare-metal ttcps library.

*/
package ttcpwm
