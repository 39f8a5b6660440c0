package main

import (
	"os"

	"github.com/cwbudde/go-pidgin/cmd/pidgin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
