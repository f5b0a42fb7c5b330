package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/config"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/loop"
)

func main() {
	tuning, err := config.LoadTuning(config.GetEnv("ORB_TUNING", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuning: %v (using defaults)\n", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Tuning: tuning}); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
