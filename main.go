package main

import (
	"fmt"
	"os"

	_ "net/http/pprof"

	"github.com/pkg/errors"

	"github.com/minernet/minerd/infrastructure/os/signal"
	"github.com/minernet/minerd/util/panics"
	"github.com/minernet/minerd/util/profiling"
	"github.com/minernet/minerd/version"
)

func main() {
	defer panics.HandlePanic(log, "main", nil)
	interrupt := signal.InterruptListener()

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	// Show version at startup.
	log.Infof("Version %s", version.Version())

	// Enable http profiling server if requested.
	if cfg.Profile != "" {
		profiling.Start(cfg.Profile, log)
	}

	doneChan := make(chan struct{})
	spawn("main-mineBlock", func() {
		err := mineBlock(cfg, interrupt)
		if err != nil {
			panic(errors.Wrap(err, "error mining a block"))
		}
		doneChan <- struct{}{}
	})

	select {
	case <-doneChan:
	case <-interrupt:
	}
}
