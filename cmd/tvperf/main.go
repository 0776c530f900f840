package main

import (
	"os"

	"github.com/ali-ardakani/TradingViewDataFeed/cmd/tvperf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
