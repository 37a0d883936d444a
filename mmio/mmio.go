// Package mmio provides fixed-address memory-mapped register access behind a
// narrow interface, so platform bring-up sequences can be driven against real
// hardware or against a scripted register bank in tests.
package mmio

// Bank is a 32-bit register file. Addresses are physical; this layer never
// computes them beyond adding a fixed offset to a fixed base.
type Bank interface {
	Read32(addr uint64) uint32
	Write32(addr uint64, val uint32)
}

// SetBits32 performs a read-modify-write setting every bit in mask.
func SetBits32(b Bank, addr uint64, mask uint32) {
	b.Write32(addr, b.Read32(addr)|mask)
}

// ClearBits32 performs a read-modify-write clearing every bit in mask.
func ClearBits32(b Bank, addr uint64, mask uint32) {
	b.Write32(addr, b.Read32(addr)&^mask)
}

// PollSet reads addr until every bit in mask is set. The wait is unbounded:
// this runs before any timer is up, and there is no recovery path if the
// hardware never responds. A fault here stalls the boot, which is the
// accepted failure mode at this stage.
func PollSet(b Bank, addr uint64, mask uint32) {
	for b.Read32(addr)&mask != mask {
	}
}

// PollClear reads addr until every bit in mask is clear. Same unbounded wait
// semantics as PollSet.
func PollClear(b Bank, addr uint64, mask uint32) {
	for b.Read32(addr)&mask != 0 {
	}
}
