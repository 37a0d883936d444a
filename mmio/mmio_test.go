package mmio_test

import (
	"testing"

	"github.com/Kevin-WangTao/arm-trusted-firmware/mmio"
	"github.com/Kevin-WangTao/arm-trusted-firmware/mmio/mmiotest"

	"github.com/stretchr/testify/require"
)

const reg uint64 = 0xfff35000

func Test_SetBits32(t *testing.T) {
	b := mmiotest.NewBank()
	b.Load(reg, 0x10)

	mmio.SetBits32(b, reg, 0x3)

	require.Equal(t, uint32(0x13), b.Read32(reg))
}

func Test_ClearBits32(t *testing.T) {
	b := mmiotest.NewBank()
	b.Load(reg, 0x13)

	mmio.ClearBits32(b, reg, 0x3)

	require.Equal(t, uint32(0x10), b.Read32(reg))
}

func Test_PollSet_ReturnsOnceMaskIsSet(t *testing.T) {
	b := mmiotest.NewBank()
	b.TransitionAfter(reg, 5, 0x8, 0)

	mmio.PollSet(b, reg, 0x8)

	require.Equal(t, 5, b.ReadCount(reg))
}

func Test_PollSet_ReturnsImmediatelyWhenAlreadySet(t *testing.T) {
	b := mmiotest.NewBank()
	b.Load(reg, 0x8)

	mmio.PollSet(b, reg, 0x8)

	require.Equal(t, 1, b.ReadCount(reg))
}

func Test_PollSet_WaitsForWholeMask(t *testing.T) {
	b := mmiotest.NewBank()
	b.Load(reg, 0x1)
	b.TransitionAfter(reg, 3, 0x2, 0)

	mmio.PollSet(b, reg, 0x3)

	require.Equal(t, 3, b.ReadCount(reg))
}

func Test_PollClear_ReturnsOnceMaskIsClear(t *testing.T) {
	b := mmiotest.NewBank()
	b.Load(reg, 0x8)
	b.TransitionAfter(reg, 4, 0, 0x8)

	mmio.PollClear(b, reg, 0x8)

	require.Equal(t, 4, b.ReadCount(reg))
}

func Test_PollClear_IgnoresUnrelatedBits(t *testing.T) {
	b := mmiotest.NewBank()
	b.Load(reg, 0xf0)

	mmio.PollClear(b, reg, 0x8)

	require.Equal(t, 1, b.ReadCount(reg))
}
