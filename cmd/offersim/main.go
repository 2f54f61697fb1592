package main

import (
	"os"

	"github.com/rovshanmuradov/offer-simulator/cmd/offersim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
