//go:build tamago && !debug

package main

import (
	"github.com/Kevin-WangTao/arm-trusted-firmware/log"
	"go.uber.org/zap"
)

func logger() *zap.SugaredLogger {
	return log.Production().Sugar()
}
