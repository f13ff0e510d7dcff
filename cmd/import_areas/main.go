package main

import (
	"os"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/cli/importareas"
)

func main() {
	if err := importareas.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
