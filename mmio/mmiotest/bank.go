// Package mmiotest provides an in-memory register bank for exercising
// bring-up sequences off target. Status bits can be scripted to change state
// after a number of reads, which makes otherwise unbounded polls terminate.
package mmiotest

// Write records one register write in program order.
type Write struct {
	Addr uint64
	Val  uint32
}

type transition struct {
	afterReads int
	set        uint32
	clear      uint32
}

// Bank implements mmio.Bank. Registers read as zero until loaded or written.
type Bank struct {
	regs   map[uint64]uint32
	reads  map[uint64]int
	trans  map[uint64][]transition
	writes []Write
}

func NewBank() *Bank {
	return &Bank{
		regs:  make(map[uint64]uint32),
		reads: make(map[uint64]int),
		trans: make(map[uint64][]transition),
	}
}

// Load sets a register value without recording a write, e.g. state persisted
// by hardware or a previous boot stage.
func (b *Bank) Load(addr uint64, val uint32) {
	b.regs[addr] = val
}

// TransitionAfter schedules a status change on addr: once the register has
// been read n times, set and clear are applied to its value.
func (b *Bank) TransitionAfter(addr uint64, n int, set, clear uint32) {
	b.trans[addr] = append(b.trans[addr], transition{afterReads: n, set: set, clear: clear})
}

func (b *Bank) Read32(addr uint64) uint32 {
	b.reads[addr]++

	v := b.regs[addr]
	for _, t := range b.trans[addr] {
		if b.reads[addr] >= t.afterReads {
			v = v&^t.clear | t.set
		}
	}
	b.regs[addr] = v

	return v
}

func (b *Bank) Write32(addr uint64, val uint32) {
	b.regs[addr] = val
	b.writes = append(b.writes, Write{Addr: addr, Val: val})
}

// Writes returns every write performed so far, in order.
func (b *Bank) Writes() []Write {
	return b.writes
}

// ReadCount returns how many times addr has been read.
func (b *Bank) ReadCount(addr uint64) int {
	return b.reads[addr]
}
