// Package meminfo describes the extents of trusted RAM visible to one boot
// stage and the carve-out arithmetic that removes the stage's own footprint
// from it.
package meminfo

import "fmt"

// Region is a contiguous extent of physical memory. A Region with Size zero
// is empty.
type Region struct {
	Base uint64
	Size uint64
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return r.Base + r.Size
}

func (r Region) IsEmpty() bool {
	return r.Size == 0
}

// Contains reports whether sub lies entirely within r.
func (r Region) Contains(sub Region) bool {
	return sub.Base >= r.Base && sub.End() <= r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("0x%x - 0x%x [size = %d]", r.Base, r.End(), r.Size)
}

// Carve returns free with used removed from its front. The used extent must
// start at the base of the free window and fit inside it: a stage image is
// always linked at the bottom of its RAM window, so anything else is a
// mis-linked layout. The layout is fixed at link time, not derived from
// untrusted input, which makes a violation a programming error; Carve panics
// rather than returning a meaningless region.
func Carve(free, used Region) Region {
	if used.Base != free.Base || used.Size > free.Size {
		panic(fmt.Sprintf("meminfo: reserved region %v not leading within free window %v", used, free))
	}

	return Region{
		Base: free.Base + used.Size,
		Size: free.Size - used.Size,
	}
}

// Layout holds the extents of the trusted RAM for one boot stage. Total is
// fixed at early setup; Free shrinks as footprints are reserved. Each stage
// owns its own Layout, nothing is shared across stages.
type Layout struct {
	Total Region
	Free  Region
}

// NewLayout returns a layout whose free window initially spans all of total.
func NewLayout(total Region) Layout {
	return Layout{Total: total, Free: total}
}

// Reserve removes used from the front of the free window. Same contract as
// Carve.
func (l *Layout) Reserve(used Region) {
	l.Free = Carve(l.Free, used)
}
