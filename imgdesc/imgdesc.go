// Package imgdesc holds the descriptors for the firmware images a boot stage
// knows how to load and hand off to.
package imgdesc

import (
	"fmt"

	"github.com/Kevin-WangTao/arm-trusted-firmware/meminfo"
)

// ImageID identifies one loadable firmware image within the stage chain.
type ImageID uint32

// Image identifiers follow the trusted board boot numbering. BL2 is the
// standard secondary loader, BL2U its recovery/firmware-update counterpart.
const (
	BL1 ImageID = iota
	BL2
	BL31
	BL32
	BL33
	BL2U
)

// InvalidID never identifies a real image and must not appear in a table.
const InvalidID ImageID = 0xffffffff

func (id ImageID) String() string {
	switch id {
	case BL1:
		return "BL1"
	case BL2:
		return "BL2"
	case BL31:
		return "BL31"
	case BL32:
		return "BL32"
	case BL33:
		return "BL33"
	case BL2U:
		return "BL2U"
	case InvalidID:
		return "INVALID"
	}

	return fmt.Sprintf("IMAGE(%d)", uint32(id))
}

// SecurityState is the world an image starts executing in.
type SecurityState uint8

const (
	Secure SecurityState = iota
	NonSecure
)

// EntryPointInfo describes where an image begins executing and the initial
// processor state it starts with.
type EntryPointInfo struct {
	PC            uint64
	SPSR          uint32
	SecurityState SecurityState
	Args          [4]uint64
}

// Descriptor ties an image id to its load window and initial entry point.
// Descriptors are immutable once the table is built.
type Descriptor struct {
	ID            ImageID
	SecurityState SecurityState
	Load          meminfo.Region
	EP            EntryPointInfo
}

// Table is a fixed set of image descriptors with an explicit length, scanned
// linearly. Tables stay small, so scan cost is irrelevant and ordering does
// not affect correctness.
type Table struct {
	descs []Descriptor
}

// NewTable builds a table from a fixed list of descriptors. Tables are
// assembled once, from link-time configuration: a duplicate or invalid id is
// an integration defect and panics rather than producing a table that
// resolves ambiguously.
func NewTable(descs ...Descriptor) *Table {
	for i, d := range descs {
		if d.ID == InvalidID {
			panic("imgdesc: descriptor carries the invalid image id")
		}

		for _, prev := range descs[:i] {
			if prev.ID == d.ID {
				panic(fmt.Sprintf("imgdesc: duplicate descriptor for %v", d.ID))
			}
		}
	}

	t := &Table{descs: make([]Descriptor, len(descs))}
	copy(t.descs, descs)

	return t
}

// Lookup returns the descriptor for id, or nil when this stage does not know
// the image. A miss is a caller-level condition, not a fault in the table.
func (t *Table) Lookup(id ImageID) *Descriptor {
	for i := range t.descs {
		if t.descs[i].ID == id {
			return &t.descs[i]
		}
	}

	return nil
}

// Len returns the number of descriptors in the table.
func (t *Table) Len() int {
	return len(t.descs)
}
