//go:build tamago
// +build tamago

package main

import (
	_ "embed"
	"fmt"

	"github.com/Kevin-WangTao/arm-trusted-firmware/imgdesc"
)

// The secondary loaders are embedded in the stage binary with the Go embed
// package. Loading them from UFS through the storage collaborator is equally
// valid; embedding keeps the trust chain inside a single signed binary.

//go:embed assets/bl2.elf
var bl2ELF []byte

//go:embed assets/bl2u.elf
var bl2uELF []byte

func imageBytes(id imgdesc.ImageID) ([]byte, error) {
	switch id {
	case imgdesc.BL2:
		return bl2ELF, nil
	case imgdesc.BL2U:
		return bl2uELF, nil
	}

	return nil, fmt.Errorf("no embedded image for %v", id)
}
