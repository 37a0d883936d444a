//go:build tamago
// +build tamago

package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Phys accesses physical addresses directly. Only meaningful on bare metal
// where the firmware runs identity mapped with device memory accessible.
type Phys struct{}

func (Phys) Read32(addr uint64) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}

func (Phys) Write32(addr uint64, val uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), val)
}
