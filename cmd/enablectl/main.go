package main

import (
	"fmt"
	"os"

	"github.com/danmuck/imapenable/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "enablectl:", err)
		os.Exit(1)
	}
}
