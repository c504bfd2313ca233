// main is the entry point for the busfactor CLI.
package main

import (
	"os"

	"github.com/huangsam/busfactor/cmd"
	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	iocache.CloseCaching()

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
