package imgdesc

import (
	"testing"

	"github.com/Kevin-WangTao/arm-trusted-firmware/meminfo"

	"github.com/stretchr/testify/require"
)

func twoEntryTable(t *testing.T) *Table {
	t.Helper()

	return NewTable(
		Descriptor{ID: ImageID(5), Load: meminfo.Region{Base: 0x1000, Size: 0x100}},
		Descriptor{ID: ImageID(7), Load: meminfo.Region{Base: 0x2000, Size: 0x200}},
	)
}

func Test_Table_LookupFindsEveryEntry(t *testing.T) {
	tbl := twoEntryTable(t)

	d5 := tbl.Lookup(ImageID(5))
	require.NotNil(t, d5)
	require.Equal(t, ImageID(5), d5.ID)
	require.Equal(t, uint64(0x1000), d5.Load.Base)

	d7 := tbl.Lookup(ImageID(7))
	require.NotNil(t, d7)
	require.Equal(t, ImageID(7), d7.ID)
	require.Equal(t, uint64(0x2000), d7.Load.Base)
}

func Test_Table_LookupMissReturnsNil(t *testing.T) {
	tbl := twoEntryTable(t)

	require.Nil(t, tbl.Lookup(ImageID(9)))
	require.Nil(t, tbl.Lookup(InvalidID))
}

func Test_Table_EmptyTableMissesEverything(t *testing.T) {
	tbl := NewTable()

	require.Zero(t, tbl.Len())
	require.Nil(t, tbl.Lookup(BL2))
	require.Nil(t, tbl.Lookup(InvalidID))
	require.Nil(t, tbl.Lookup(ImageID(0)))
}

func Test_NewTable_PanicsOnDuplicateID(t *testing.T) {
	require.Panics(t, func() {
		NewTable(
			Descriptor{ID: BL2},
			Descriptor{ID: BL2},
		)
	})
}

func Test_NewTable_PanicsOnInvalidID(t *testing.T) {
	require.Panics(t, func() {
		NewTable(Descriptor{ID: InvalidID})
	})
}

func Test_NewTable_CopiesItsInput(t *testing.T) {
	descs := []Descriptor{{ID: BL2, Load: meminfo.Region{Base: 0x1000}}}
	tbl := NewTable(descs...)

	descs[0].Load.Base = 0xdead

	require.Equal(t, uint64(0x1000), tbl.Lookup(BL2).Load.Base)
}

func Test_ImageID_String(t *testing.T) {
	require.Equal(t, "BL2U", BL2U.String())
	require.Equal(t, "INVALID", InvalidID.String())
	require.Equal(t, "IMAGE(42)", ImageID(42).String())
}
