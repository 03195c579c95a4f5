package main

import (
	"os"

	"github.com/ivelina/tendril/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
