package main

import (
	"os"

	"github.com/fuelflow/meal-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
