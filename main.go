package main

import (
	"os"

	"github.com/apetrov/coursemate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
