package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// listenForCancellationAndAddToContext returns a context cancelled on SIGINT or SIGTERM.
func listenForCancellationAndAddToContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
