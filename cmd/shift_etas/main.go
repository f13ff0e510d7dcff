package main

import (
	"os"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/cli/shiftetas"
)

func main() {
	if err := shiftetas.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
