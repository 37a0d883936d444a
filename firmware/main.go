//go:build tamago
// +build tamago

package main

import (
	"runtime"
	"runtime/debug"
	"time"

	usbarmory "github.com/f-secure-foundry/tamago/board/f-secure/usbarmory/mark-two"
	"github.com/f-secure-foundry/tamago/soc/imx6"

	"github.com/Kevin-WangTao/arm-trusted-firmware/mmio"
	"github.com/Kevin-WangTao/arm-trusted-firmware/platform/hikey960"
)

var (
	// Build is a string which contains build user, host and date.
	Build string

	// Revision contains the git revision (last hash and/or tag).
	Revision string
)

func init() {
	l := logger()

	l.Infow("bl1 started", "GOOS", runtime.GOOS, "GOARCH", runtime.GOARCH, "GOVERSION", runtime.Version(), "revision", Revision, "build", Build)

	if !imx6.Native {
		l.Fatal("running the boot stage on emulated hardware is not supported")
	}

	loadDebugAccessory()
}

func main() {
	defer catchPanic()

	l := logger()

	p := hikey960.New(hikey960.Config{
		Bank:       mmio.Phys{},
		Console:    &serialConsole{l: l},
		Timer:      &delayTimer{l: l},
		Storage:    &ufsController{l: l},
		CacheFlush: imx6.ARM.CacheFlushData,
		Log:        l,
	})

	p.EarlySetup()
	p.Setup()

	id := p.NextImageID()

	desc := p.ImageDescriptor(id)
	if desc == nil {
		l.Panicw("next image is unknown to this stage", "image", id.String())
	}

	l.Infow("continuing boot", "image", id.String(), "load", desc.Load.String())

	ep, params := p.PrepareHandoff()
	p.SetNextImageEP(ep, desc)
	p.NextStageMemInfo(params)
	params.SetNextImage(id)
	p.SetEPInfo(id, ep)
	p.FlushHandoff()

	if err := bootNext(id); err != nil {
		l.Panic(err)
	}

	resetBoard()
}

func loadDebugAccessory() {
	debugConsole, _ := usbarmory.DetectDebugAccessory(250 * time.Millisecond)
	<-debugConsole
}

func resetBoard() {
	usbarmory.Reset()
}

// catchPanic catches every panic() and prints the stacktrace before
// resetting the board: there is no state worth preserving this early.
func catchPanic() {
	l := logger()
	if r := recover(); r != nil {
		l.Errorf("panic: %v\n\n", r)
		l.Error(string(debug.Stack()))
		l.Warn("rebooting in 1 second...")

		time.Sleep(1 * time.Second)
		resetBoard()
	}
}
