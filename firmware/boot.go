//go:build tamago
// +build tamago

package main

import (
	"github.com/f-secure-foundry/armory-boot/exec"
	"github.com/f-secure-foundry/tamago/dma"
	"github.com/f-secure-foundry/tamago/soc/imx6"

	"github.com/Kevin-WangTao/arm-trusted-firmware/imgdesc"
)

// DMA window used to stage the next image before the jump.
const (
	dmaStart = 0x9c000000
	dmaSize  = 0x04000000
)

// bootNext stages the image for id and transfers control to it. Does not
// return on success.
func bootNext(id imgdesc.ImageID) error {
	buf, err := imageBytes(id)
	if err != nil {
		return err
	}

	dma.Init(dmaStart, dmaSize)

	image := &exec.ELFImage{
		Region: dma.Default(),
		ELF:    buf,
	}

	if err := image.Load(); err != nil {
		return err
	}

	return image.Boot(cleanup)
}

// cleanup runs right before the jump, with no way back afterwards.
func cleanup() {
	imx6.ARM.InterruptsDisable()
	imx6.ARM.CacheFlushData()
	imx6.ARM.CacheDisable()
}
