package main

import (
	"os"

	"github.com/kriju0726/HealiFy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
