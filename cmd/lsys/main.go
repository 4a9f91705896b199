package main

import (
	"os"

	"github.com/viktordanov/lsys/cmd/lsys/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
