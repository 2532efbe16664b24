// Command tspdp solves small Travelling Salesman instances exactly with the
// Held–Karp dynamic program.
//
// Usage:
//
//	tspdp solve matrix.txt          # whitespace text matrix, INF = no edge
//	tspdp solve -s 2 matrix.yaml    # YAML document, explicit start node
//	tspdp examples                  # built-in sample graphs
//	tspdp random -n 12 --seed 7     # print a reproducible random instance
//	tspdp cache prune --older-than 720h
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(ctx, os.Stdout, os.Stderr).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
