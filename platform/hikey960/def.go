package hikey960

// Platform memory map for the first stage. On target these come from the
// link step and are page aligned; they are opaque immutable values here.
const (
	// Read-only extent of the stage image.
	BL1ROBase  uint64 = 0x1ac00000
	BL1ROLimit uint64 = 0x1ac98000

	// Trusted RAM window visible to this stage.
	BL1RWBase uint64 = 0x1ac98000
	BL1RWSize uint64 = 0x00068000

	// Extent the running stage image occupies within the RW window. Sits at
	// the bottom of the window, which is what makes the front carve-out the
	// only case the layout code must support.
	BL1RAMBase  uint64 = 0x1ac98000
	BL1RAMLimit uint64 = 0x1acb8000

	// Coherent memory region, kept out of the cacheable mapping.
	CoherentRAMBase  uint64 = 0x1acfe000
	CoherentRAMLimit uint64 = 0x1ad00000

	// Load windows for the images this stage can dispatch to.
	BL2Base  uint64 = 0x1ad00000
	BL2Size  uint64 = 0x00058000
	BL2UBase uint64 = 0x1ad00000
	BL2USize uint64 = 0x00018000

	// Descriptor heap handed to the UFS controller.
	UFSDescBase uint64 = 0x20000000
	UFSDescSize uint64 = 0x00200000
)

// UFS init flags.
const (
	// UFSSkipInit tells the controller to skip its internal re-init path
	// when earlier firmware already brought it up partway.
	UFSSkipInit uint32 = 1 << 0
)

// SP804 tick configuration: 19.2 MHz input scaled by 15625/512 steps down to
// a 32.768 kHz tick for the delay-timer service.
const (
	TimerClkMult uint32 = 15625
	TimerClkDiv  uint32 = 512
)

// Boot modes persisted in SCTRL_BAK_DATA0 by a board strap or the previous
// stage. The field is one bit wide; the raw register is masked before use.
const (
	BootModeRecovery uint32 = 0
	BootModeNormal   uint32 = 1
	BootModeMask     uint32 = 1
)

// Saved processor state the secondary loaders start with (EL1h, exceptions
// masked).
const spsrEL1h uint32 = 0x3c5
