// Command bl1sim drives the first-stage platform flow against a scripted
// register bank, making the bring-up sequence and dispatch decisions
// inspectable without board access.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kevin-WangTao/arm-trusted-firmware/log"
	"github.com/Kevin-WangTao/arm-trusted-firmware/mmio/mmiotest"
	"github.com/Kevin-WangTao/arm-trusted-firmware/platform/hikey960"
)

var rawBootMode uint32

var rootCmd = &cobra.Command{
	Use:   "bl1sim",
	Short: "Simulate first-stage platform bring-up and next-image dispatch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().Uint32Var(&rawBootMode, "boot-mode", hikey960.BootModeNormal,
		"raw SCTRL_BAK_DATA0 register value")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	l := log.Development().Sugar()

	bank := mmiotest.NewBank()
	bank.Load(hikey960.SCTRLBase+hikey960.SCTRLBakData0, rawBootMode)

	// script the timer status registers so the reset/enable polls terminate
	bank.Load(hikey960.CRGBase+hikey960.CRGPerRstStat1, hikey960.PeriTimer9)
	bank.TransitionAfter(hikey960.CRGBase+hikey960.CRGPerRstStat1, 2, 0, hikey960.PeriTimer9)
	bank.TransitionAfter(hikey960.CRGBase+hikey960.CRGPerStat1, 2, hikey960.PeriTimer9, 0)

	p := hikey960.New(hikey960.Config{
		Bank:       bank,
		Console:    &simConsole{l},
		Timer:      &simTimer{l},
		Storage:    &simStorage{l},
		CacheFlush: func() { l.Info("hand-off block flushed") },
		Log:        l,
	})

	p.EarlySetup()
	p.ArchSetup(&simMMU{l})
	p.Setup()

	id := p.NextImageID()

	desc := p.ImageDescriptor(id)
	if desc == nil {
		return fmt.Errorf("image %v is not in the descriptor table", id)
	}

	ep, params := p.PrepareHandoff()
	p.SetNextImageEP(ep, desc)
	p.NextStageMemInfo(params)
	params.SetNextImage(id)
	p.SetEPInfo(id, ep)
	p.FlushHandoff()

	block := p.Handoff()
	l.Infow("stage transition ready",
		"next_image", id.String(),
		"entry_pc", fmt.Sprintf("%#x", block.EntryPoint().PC),
		"spsr", fmt.Sprintf("%#x", block.EntryPoint().SPSR),
		"free_ram", block.Params().FreeRAM.String(),
	)

	for i, w := range bank.Writes() {
		l.Infow("register write", "seq", i, "addr", fmt.Sprintf("%#x", w.Addr), "val", fmt.Sprintf("%#x", w.Val))
	}

	return nil
}
