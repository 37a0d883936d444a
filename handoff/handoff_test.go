package handoff

import (
	"testing"

	"github.com/Kevin-WangTao/arm-trusted-firmware/imgdesc"
	"github.com/Kevin-WangTao/arm-trusted-firmware/meminfo"

	"github.com/stretchr/testify/require"
)

func Test_Block_PrepareZeroesBothViews(t *testing.T) {
	b := &Block{}

	ep, params := b.Prepare()
	ep.SetEntry(0x1ac00000, 0x3cd)
	ep.SetArg(0, 0xdeadbeef)
	params.SetNextImage(imgdesc.BL2)
	params.SetFreeRAM(meminfo.Region{Base: 0x2000, Size: 0x8000})
	params.SetOpaque(3, 42)

	ep, params = b.Prepare()

	require.Equal(t, imgdesc.EntryPointInfo{}, ep.EntryPointInfo())
	require.Equal(t, Params{}, params.Params())
	require.Equal(t, imgdesc.EntryPointInfo{}, b.EntryPoint())
	require.Equal(t, Params{}, b.Params())
}

func Test_Block_ViewsAreDisjoint(t *testing.T) {
	b := &Block{}
	ep, params := b.Prepare()

	ep.SetEntry(0x1ac00000, 0x3cd)
	ep.SetSecurityState(imgdesc.Secure)
	ep.SetArg(1, 0xabcd)

	require.Equal(t, Params{}, params.Params(), "entry-point writes must not touch the params range")

	params.SetNextImage(imgdesc.BL2U)
	params.SetFlags(1)
	params.SetOpaque(0, 7)

	want := imgdesc.EntryPointInfo{
		PC:            0x1ac00000,
		SPSR:          0x3cd,
		SecurityState: imgdesc.Secure,
	}
	want.Args[1] = 0xabcd

	require.Equal(t, want, ep.EntryPointInfo(), "params writes must not touch the entry-point range")
}

func Test_Block_PopulationOrderDoesNotMatter(t *testing.T) {
	fill := func(b *Block, paramsFirst bool) (imgdesc.EntryPointInfo, Params) {
		ep, params := b.Prepare()
		if paramsFirst {
			params.SetNextImage(imgdesc.BL2)
			params.SetFreeRAM(meminfo.Region{Base: 0x2000, Size: 0x8000})
			ep.SetEntry(0x1700000, 0x1d3)
		} else {
			ep.SetEntry(0x1700000, 0x1d3)
			params.SetNextImage(imgdesc.BL2)
			params.SetFreeRAM(meminfo.Region{Base: 0x2000, Size: 0x8000})
		}
		return b.EntryPoint(), b.Params()
	}

	epA, paramsA := fill(&Block{}, false)
	epB, paramsB := fill(&Block{}, true)

	require.Equal(t, epA, epB)
	require.Equal(t, paramsA, paramsB)
}

func Test_Block_FlushRunsCacheMaintenance(t *testing.T) {
	flushes := 0
	b := &Block{CacheFlush: func() { flushes++ }}

	ep, _ := b.Prepare()
	ep.SetEntry(0x1700000, 0x1d3)
	b.Flush()

	require.Equal(t, 1, flushes)
}

func Test_Block_FlushWithoutCacheMaintenanceIsNoop(t *testing.T) {
	b := &Block{}

	b.Prepare()
	require.NotPanics(t, func() { b.Flush() })
}

func Test_Block_PrepareAfterFlushPanics(t *testing.T) {
	b := &Block{}

	b.Prepare()
	b.Flush()

	require.Panics(t, func() { b.Prepare() })
}

func Test_Block_FlushPreservesContents(t *testing.T) {
	b := &Block{}
	ep, params := b.Prepare()

	ep.SetEntry(0x1ac00000, 0x3cd)
	params.SetNextImage(imgdesc.BL2U)
	b.Flush()

	require.Equal(t, uint64(0x1ac00000), b.EntryPoint().PC)
	require.Equal(t, imgdesc.BL2U, b.Params().NextImage)
}
