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

import "errors"

// Error kinds surfaced by the controller. Both are recoverable by the
// caller: a failed Configure leaves the channel's previous waveform and
// enabled/disabled status untouched. Wrapped errors carry the channel
// index and the precondition that failed; match with errors.Is.
var (
	// ErrInvalidArgument reports a request outside the accepted
	// range, such as a negative period.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClockUnavailable reports that the channel's counter clock
	// could not be enabled. No register has been written when this
	// is returned.
	ErrClockUnavailable = errors.New("clock unavailable")
)
