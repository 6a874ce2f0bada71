package main

import (
	"fmt"
	"os"

	"github.com/diegok/solopong/internal/app"
	"github.com/diegok/solopong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  solopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>     Points to win (default: 11)")
	fmt.Fprintln(os.Stderr, "  --seed <n>       Random seed (default: time-based)")
	fmt.Fprintln(os.Stderr, "  --mute           Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w/s or arrows    Move paddle")
	fmt.Fprintln(os.Stderr, "  space or enter   Serve / rematch")
	fmt.Fprintln(os.Stderr, "  q or esc         Quit")
}
