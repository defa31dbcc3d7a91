package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/di"
)

func main() {
	// Boot flags are applied while loading configuration, before the
	// command tree exists, because everything below is built from it.
	conf, err := config.Load(bootOptions(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := conf.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing data directory: %v\n", err)
		os.Exit(1)
	}

	root, cleanup, err := di.InitApp(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting up: %v\n", err)
		os.Exit(1)
	}

	if err := root.Execute(); err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cleanup()
}

// bootOptions scans the raw arguments for --config and --db without cobra,
// which only parses flags after the tree those flags configure is built.
func bootOptions(args []string) config.Options {
	var opts config.Options
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--config" && i+1 < len(args):
			opts.ConfigPath = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--config="):
			opts.ConfigPath = strings.TrimPrefix(args[i], "--config=")
		case args[i] == "--db" && i+1 < len(args):
			opts.DBPath = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--db="):
			opts.DBPath = strings.TrimPrefix(args[i], "--db=")
		}
	}
	return opts
}
