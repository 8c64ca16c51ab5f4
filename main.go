package main

import (
	"os"

	"github.com/flifloo/roboquote/cmd"
	"github.com/flifloo/roboquote/logger"
)

func main() {
	err := cmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
