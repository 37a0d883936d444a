package hikey960

// Hi3660 SoC register map, limited to the blocks the bring-up sequence
// touches. Offsets are added to their block base, never computed.
const (
	// Clock and reset generator.
	CRGBase uint64 = 0xfff35000

	CRGPerEn1      uint64 = 0x010
	CRGPerDis1     uint64 = 0x014
	CRGPerStat1    uint64 = 0x01c
	CRGPerRstEn1   uint64 = 0x06c
	CRGPerRstDis1  uint64 = 0x070
	CRGPerRstStat1 uint64 = 0x074
	CRGClkDiv3     uint64 = 0x0b4

	// PERI_TIMER9 reset/gate bit in the PERRST1/PEREN1 banks.
	PeriTimer9 uint32 = 1 << 17

	// Value programmed into CLKDIV3 to source the peripheral dividers.
	ClkDiv3Val uint32 = 0xf0001000

	// System controller; BAK_DATA0 persists the boot mode across resets.
	SCTRLBase     uint64 = 0xfff0a000
	SCTRLBakData0 uint64 = 0x40c

	// PMU over SSI0.
	PMUSSI0Base        uint64 = 0xfff34000
	PMUSSI0ClkTopCtrl7 uint64 = 0x10c

	// np_xo_abb_dig_START in PMIC_CLK_TOP_CTRL7.
	NPXOABBDig uint32 = 1 << 1

	// SP804 dual timer 9, ticked for the delay-timer service.
	Timer9Base uint64 = 0xe8a00000

	// UFS host controller.
	UFSBase uint64 = 0xff3b0000

	// PL011 UART6, the early debug console.
	UART6Base    uint64 = 0xfff32000
	UARTClockHz  uint32 = 19200000
	UARTBaudrate uint32 = 115200
)
