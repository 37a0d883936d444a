// Package handoff implements the parameter block one boot stage populates
// for the next. Early boot has no heap, so a single statically sized block
// is zeroed and repopulated for every stage transition; the next stage
// receives a reference into it and must treat it as read only.
package handoff

import (
	"github.com/Kevin-WangTao/arm-trusted-firmware/imgdesc"
	"github.com/Kevin-WangTao/arm-trusted-firmware/meminfo"
)

// Params carries the platform and firmware metadata the next stage consumes
// alongside its entry point information.
type Params struct {
	NextImage imgdesc.ImageID
	FreeRAM   meminfo.Region
	Flags     uint32

	// Opaque words are platform specific and not interpreted by this layer.
	Opaque [8]uint64
}

type blockMem struct {
	ep     imgdesc.EntryPointInfo
	params Params
}

// Block is the backing store for one stage transition. It belongs to the
// producing stage until Flush, after which it is owned by the next stage and
// must not be touched again.
type Block struct {
	// CacheFlush, when non-nil, runs during Flush to push the populated
	// block to the point of coherency. Ports with coherent memory at the
	// hand-off point leave it nil; the Flush call site stays either way.
	CacheFlush func()

	mem     blockMem
	flushed bool
}

// EPView writes the entry-point sub-range of a block: where the next stage
// begins executing and under what initial processor state.
type EPView struct {
	ep *imgdesc.EntryPointInfo
}

// ParamsView writes the platform-parameters sub-range of a block.
type ParamsView struct {
	params *Params
}

// Prepare zeroes the whole block and returns fresh views into its two
// disjoint sub-ranges. Zeroing covers every byte, populated or not, so no
// stale state from a previous transition leaks forward. Population hooks may
// run in any order, as long as all of them run before Flush.
func (b *Block) Prepare() (EPView, ParamsView) {
	if b.flushed {
		panic("handoff: block reused after hand-off")
	}

	b.mem = blockMem{}

	return EPView{ep: &b.mem.ep}, ParamsView{params: &b.mem.params}
}

// Flush publishes the populated block to the next stage. After Flush the
// producing stage must not touch the block; a later Prepare panics.
func (b *Block) Flush() {
	if b.CacheFlush != nil {
		b.CacheFlush()
	}

	b.flushed = true
}

// EntryPoint returns a copy of the entry-point sub-range, for the next
// stage's consumption and for inspection in tests.
func (b *Block) EntryPoint() imgdesc.EntryPointInfo {
	return b.mem.ep
}

// Params returns a copy of the parameters sub-range.
func (b *Block) Params() Params {
	return b.mem.params
}

// SetEntry records the program counter and saved processor state word the
// next stage starts with.
func (v EPView) SetEntry(pc uint64, spsr uint32) {
	v.ep.PC = pc
	v.ep.SPSR = spsr
}

// SetSecurityState records the world the next stage enters in.
func (v EPView) SetSecurityState(s imgdesc.SecurityState) {
	v.ep.SecurityState = s
}

// SetArg sets one of the next stage's entry argument registers.
func (v EPView) SetArg(i int, val uint64) {
	v.ep.Args[i] = val
}

// EntryPointInfo returns a copy of the view's current contents.
func (v EPView) EntryPointInfo() imgdesc.EntryPointInfo {
	return *v.ep
}

// SetNextImage records which image the next stage should continue with.
func (v ParamsView) SetNextImage(id imgdesc.ImageID) {
	v.params.NextImage = id
}

// SetFreeRAM hands the next stage its free trusted RAM window.
func (v ParamsView) SetFreeRAM(r meminfo.Region) {
	v.params.FreeRAM = r
}

func (v ParamsView) SetFlags(flags uint32) {
	v.params.Flags = flags
}

// SetOpaque sets one platform-specific word.
func (v ParamsView) SetOpaque(i int, val uint64) {
	v.params.Opaque[i] = val
}

// Params returns a copy of the view's current contents.
func (v ParamsView) Params() Params {
	return *v.params
}
