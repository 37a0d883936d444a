//go:build tamago
// +build tamago

package main

import (
	"go.uber.org/zap"

	"github.com/Kevin-WangTao/arm-trusted-firmware/platform/hikey960"
)

// Driver fronts for the bring-up collaborators. The drivers themselves live
// outside this layer; these record the configuration handed to them.

type serialConsole struct {
	l *zap.SugaredLogger
}

func (c *serialConsole) Init(base uint64, clockHz, baud uint32) {
	c.l.Infow("console up", "base", base, "clock", clockHz, "baud", baud)
}

type delayTimer struct {
	l *zap.SugaredLogger
}

func (d *delayTimer) Init(base uint64, clkMult, clkDiv uint32) {
	d.l.Infow("tick source configured", "base", base, "mult", clkMult, "div", clkDiv)
}

type ufsController struct {
	l *zap.SugaredLogger
}

func (u *ufsController) Init(p hikey960.StorageParams) {
	u.l.Infow("storage controller configured",
		"base", p.RegBase,
		"desc_base", p.DescBase,
		"desc_size", p.DescSize,
		"flags", p.Flags,
	)
}
