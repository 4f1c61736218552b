package main

import (
	"os"

	"github.com/comptaflow/backend/cmd/comptactl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
