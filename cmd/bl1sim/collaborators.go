package main

import (
	"go.uber.org/zap"

	"github.com/Kevin-WangTao/arm-trusted-firmware/meminfo"
	"github.com/Kevin-WangTao/arm-trusted-firmware/platform/hikey960"
)

// Simulated collaborators: each one just reports the configuration the
// platform hands it.

type simConsole struct {
	l *zap.SugaredLogger
}

func (c *simConsole) Init(base uint64, clockHz, baud uint32) {
	c.l.Infow("console init", "base", base, "clock", clockHz, "baud", baud)
}

type simTimer struct {
	l *zap.SugaredLogger
}

func (t *simTimer) Init(base uint64, clkMult, clkDiv uint32) {
	t.l.Infow("timer init", "base", base, "mult", clkMult, "div", clkDiv)
}

type simStorage struct {
	l *zap.SugaredLogger
}

func (s *simStorage) Init(p hikey960.StorageParams) {
	s.l.Infow("storage init", "base", p.RegBase, "desc_base", p.DescBase, "desc_size", p.DescSize, "flags", p.Flags)
}

type simMMU struct {
	l *zap.SugaredLogger
}

func (m *simMMU) InitEL3(total meminfo.Region, roBase, roLimit, cohBase, cohLimit uint64) {
	m.l.Infow("mmu init", "total", total.String(), "ro_base", roBase, "ro_limit", roLimit, "coh_base", cohBase, "coh_limit", cohLimit)
}
