// Package hikey960 implements the platform hooks of the first boot stage on
// the HiKey960 (Hi3660) board: trusted RAM carve-out, hardware bring-up,
// boot-mode dispatch, image descriptor lookup and the stage hand-off block.
package hikey960

import (
	"errors"

	"github.com/Kevin-WangTao/arm-trusted-firmware/handoff"
	"github.com/Kevin-WangTao/arm-trusted-firmware/imgdesc"
	"github.com/Kevin-WangTao/arm-trusted-firmware/meminfo"
	"github.com/Kevin-WangTao/arm-trusted-firmware/mmio"

	"go.uber.org/zap"
)

// ErrInvalidBootMode is the panic value raised when the persisted boot mode
// decodes to neither recovery nor normal. Nothing may run afterwards: the
// next loader cannot be chosen, and the persisted value cannot change
// mid-boot, so there is no retry.
var ErrInvalidBootMode = errors.New("hikey960: invalid boot mode")

// Console is the early debug sink. Bring-up only starts it; everything else
// about it lives outside this layer.
type Console interface {
	Init(base uint64, clockHz, baud uint32)
}

// DelayTimer consumes the tick source configured during bring-up and serves
// delay/poll primitives to later stages.
type DelayTimer interface {
	Init(base uint64, clkMult, clkDiv uint32)
}

// StorageParams configures the storage controller the image loader reads
// from.
type StorageParams struct {
	RegBase  uint64
	DescBase uint64
	DescSize uint64
	Flags    uint32
}

// Storage is the controller bring-up entry point of the image-loading
// collaborator.
type Storage interface {
	Init(p StorageParams)
}

// MMU abstracts translation table setup, which happens outside this layer.
type MMU interface {
	InitEL3(total meminfo.Region, roBase, roLimit, cohBase, cohLimit uint64)
}

// Config carries the register bank and the collaborators the platform drives
// during bring-up. Bank, Console, Timer and Storage are required.
type Config struct {
	Bank    mmio.Bank
	Console Console
	Timer   DelayTimer
	Storage Storage

	// CacheFlush pushes the hand-off block to the point of coherency before
	// ownership transfers. Leave nil where memory is coherent at hand-off.
	CacheFlush func()

	Log *zap.SugaredLogger
}

// Platform is the per-stage platform state. One instance lives for the
// duration of the stage; nothing in it is shared with the next stage except
// the hand-off block, and only after FlushHandoff.
type Platform struct {
	bank    mmio.Bank
	console Console
	timer   DelayTimer
	storage Storage
	log     *zap.SugaredLogger

	layout meminfo.Layout
	descs  *imgdesc.Table
	block  handoff.Block
}

func New(cfg Config) *Platform {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}

	p := &Platform{
		bank:    cfg.Bank,
		console: cfg.Console,
		timer:   cfg.Timer,
		storage: cfg.Storage,
		log:     cfg.Log,
	}

	p.block.CacheFlush = cfg.CacheFlush
	p.descs = imgdesc.NewTable(
		imgdesc.Descriptor{
			ID:            imgdesc.BL2,
			SecurityState: imgdesc.Secure,
			Load:          meminfo.Region{Base: BL2Base, Size: BL2Size},
			EP: imgdesc.EntryPointInfo{
				PC:            BL2Base,
				SPSR:          spsrEL1h,
				SecurityState: imgdesc.Secure,
			},
		},
		imgdesc.Descriptor{
			ID:            imgdesc.BL2U,
			SecurityState: imgdesc.Secure,
			Load:          meminfo.Region{Base: BL2UBase, Size: BL2USize},
			EP: imgdesc.EntryPointInfo{
				PC:            BL2UBase,
				SPSR:          spsrEL1h,
				SecurityState: imgdesc.Secure,
			},
		},
	)

	return p
}

// EarlySetup runs before the MMU and caches are up: it starts the early
// console, then carves this stage's own footprint out of the trusted RAM
// window so later load decisions only see memory that is actually free.
func (p *Platform) EarlySetup() {
	p.console.Init(UART6Base, UARTClockHz, UARTBaudrate)

	p.layout = meminfo.NewLayout(meminfo.Region{Base: BL1RWBase, Size: BL1RWSize})
	p.layout.Reserve(meminfo.Region{Base: BL1RAMBase, Size: BL1RAMLimit - BL1RAMBase})

	p.log.Infow("BL1 RAM extents",
		"base", BL1RAMBase,
		"limit", BL1RAMLimit,
		"free", p.layout.Free.String(),
	)
}

// ArchSetup hands the stage's memory extents to the MMU collaborator. The
// coherent region bounds come from the link step and are page aligned.
func (p *Platform) ArchSetup(mmu MMU) {
	mmu.InitEL3(p.layout.Total, BL1ROBase, BL1ROLimit, CoherentRAMBase, CoherentRAMLimit)
}

// SecMemLayout returns the trusted RAM layout of this stage. Valid after
// EarlySetup.
func (p *Platform) SecMemLayout() *meminfo.Layout {
	return &p.layout
}

// Setup performs the remaining platform initialization once the MMU and data
// cache are enabled. Step order is fixed: clocks precede everything they
// feed, and storage comes up last so image reads only ever hit an
// initialized controller. None of the steps report errors; a step either
// lands or the boot stalls inside its poll.
func (p *Platform) Setup() {
	p.clkInit()
	p.pmuInit()
	p.timerInit()
	p.storageInit()
}

func (p *Platform) clkInit() {
	p.bank.Write32(CRGBase+CRGClkDiv3, ClkDiv3Val)
}

// pmuInit clears np_xo_abb_dig_START in PMIC_CLK_TOP_CTRL7.
func (p *Platform) pmuInit() {
	mmio.ClearBits32(p.bank, PMUSSI0Base+PMUSSI0ClkTopCtrl7, NPXOABBDig)
}

func (p *Platform) timerInit() {
	// release TIMER9 from reset, then gate its clock on
	p.bank.Write32(CRGBase+CRGPerRstDis1, PeriTimer9)
	mmio.PollClear(p.bank, CRGBase+CRGPerRstStat1, PeriTimer9)

	p.bank.Write32(CRGBase+CRGPerEn1, PeriTimer9)
	mmio.PollSet(p.bank, CRGBase+CRGPerStat1, PeriTimer9)

	// 32.768 kHz tick for the delay-timer service
	p.timer.Init(Timer9Base, TimerClkMult, TimerClkDiv)
}

func (p *Platform) storageInit() {
	p.storage.Init(StorageParams{
		RegBase:  UFSBase,
		DescBase: UFSDescBase,
		DescSize: UFSDescSize,
		Flags:    UFSSkipInit,
	})
}

// NextImageID reads the persisted boot mode and picks the image the stage
// chain continues with: recovery straps select the firmware-update loader,
// normal boots the standard one.
func (p *Platform) NextImageID() imgdesc.ImageID {
	mode := p.bank.Read32(SCTRLBase + SCTRLBakData0)

	return p.dispatchBootMode(mode & BootModeMask)
}

// dispatchBootMode maps an already-masked boot mode to an image id. The
// default arm is unreachable through the one-bit mask but is defended
// anyway; an invalid mode is a fatal configuration error.
func (p *Platform) dispatchBootMode(mode uint32) imgdesc.ImageID {
	switch mode {
	case BootModeRecovery:
		return imgdesc.BL2U
	case BootModeNormal:
		return imgdesc.BL2
	default:
		p.log.Warnw("invalid boot mode", "mode", mode)
		panic(ErrInvalidBootMode)
	}
}

// ImageDescriptor resolves an image id through the platform descriptor
// table. Returns nil when the image is unknown to this stage; the caller
// decides whether that is fatal.
func (p *Platform) ImageDescriptor(id imgdesc.ImageID) *imgdesc.Descriptor {
	return p.descs.Lookup(id)
}

// PrepareHandoff zeroes the stage transition block and returns the views the
// remaining hooks populate. Called at most once per transition.
func (p *Platform) PrepareHandoff() (handoff.EPView, handoff.ParamsView) {
	return p.block.Prepare()
}

// SetNextImageEP fills the entry-point view from a loaded image's
// descriptor.
func (p *Platform) SetNextImageEP(ep handoff.EPView, d *imgdesc.Descriptor) {
	ep.SetEntry(d.EP.PC, d.EP.SPSR)
	ep.SetSecurityState(d.EP.SecurityState)
}

// NextStageMemInfo hands the next stage the trusted RAM still free after
// this stage's carve-outs.
func (p *Platform) NextStageMemInfo(params handoff.ParamsView) {
	params.SetFreeRAM(p.layout.Free)
}

// SetEPInfo is the per-image adjustment hook run after an image is loaded.
// This platform has nothing to adjust.
func (p *Platform) SetEPInfo(id imgdesc.ImageID, ep handoff.EPView) {
}

// FlushHandoff publishes the populated block; after this the block belongs
// to the next stage and this stage must not touch it again.
func (p *Platform) FlushHandoff() {
	p.block.Flush()
}

// Handoff exposes the transition block for the code that transfers control.
func (p *Platform) Handoff() *handoff.Block {
	return &p.block
}
