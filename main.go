// credprobe - a concurrent credential-search tool for authorised
// security labs: enumerate a candidate space, test each candidate
// against a remote oracle, stop on the first hit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"credprobe/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code, err := cmd.Execute(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "credprobe: %v\n", err)
	}
	os.Exit(code)
}
