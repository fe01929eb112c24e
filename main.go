package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"vulkan-test/config"

	"github.com/cockroachdb/errors"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	app := NewSandboxApp(cfg, os.Stdout)
	if err := app.Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}
