package main

import (
	"os"

	"github.com/avelasco/roadready/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
