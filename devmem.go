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

//go:build linux

package ttcpwm

import (
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

const devMem = "/dev/mem"

// DevMem is a Mem32 backed by a /dev/mem mapping of the TTC register
// window. The base address must be page aligned (the Zynq-7000 TTC
// blocks at 0xF8001000 and 0xF8002000 both are).
type DevMem struct {
	f   *os.File
	mem []byte
}

// OpenDevMem maps one page of physical memory at base and returns it
// as a register window. The mapping stays valid until Close.
func OpenDevMem(base uint64) (*DevMem, error) {
	pg := uint64(os.Getpagesize())
	if base%pg != 0 {
		return nil, errors.Errorf("base 0x%x is not page aligned", base)
	}
	f, err := os.OpenFile(devMem, os.O_RDWR|os.O_SYNC, 0660)
	if err != nil {
		return nil, errors.Wrap(err, devMem)
	}
	mem, err := unix.Mmap(int(f.Fd()), int64(base), int(pg), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "%s: mmap 0x%x", devMem, base)
	}
	return &DevMem{f: f, mem: mem}, nil
}

// Read32 performs a single ordered 32 bit load from device memory.
// The atomic access keeps the load from being merged or elided.
func (m *DevMem) Read32(offset uint32) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&m.mem[offset])))
}

// Write32 performs a single ordered 32 bit store to device memory.
func (m *DevMem) Write32(offset uint32, value uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&m.mem[offset])), value)
}

// Close unmaps the register window.
func (m *DevMem) Close() error {
	return multierr.Append(errors.Wrap(unix.Munmap(m.mem), "munmap"), m.f.Close())
}
