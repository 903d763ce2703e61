package main

import (
	"os"

	"github.com/leasemint/dataroom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
