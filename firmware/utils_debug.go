//go:build tamago && debug

package main

import (
	"runtime"
	"time"

	usbarmory "github.com/f-secure-foundry/tamago/board/f-secure/usbarmory/mark-two"
	"github.com/f-secure-foundry/tamago/soc/imx6"

	"github.com/Kevin-WangTao/arm-trusted-firmware/log"
	"go.uber.org/zap"
)

func init() {
	go rebootWatcher()
}

// rebootWatcher resets the board when 'r' comes in on the debug UART, which
// beats power cycling during bring-up work.
func rebootWatcher() {
	buf := make([]byte, 1)

	l := logger()

	for {
		runtime.Gosched()
		imx6.UART2.Read(buf)
		if buf[0] == 0 {
			continue
		}

		if buf[0] == 'r' {
			l.Info("rebooting...")
			time.Sleep(500 * time.Millisecond)
			usbarmory.Reset()
		}

		buf[0] = 0
	}
}

func logger() *zap.SugaredLogger {
	return log.Development().Sugar()
}
