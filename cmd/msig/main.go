package main

import (
	"os"

	"github.com/openmsig/msig-client/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
