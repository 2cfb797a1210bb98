// Package signal turns SIGINT and SIGTERM into context cancellation.
//
// The wait command blocks until a resolved instant is reached; an interrupt
// must end that wait cleanly so the CLI can print how much time remained and
// exit with the Interrupted code.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal arrives, onInterrupt (if non-nil) is called with it and
// then cancel is invoked. The handler goroutine exits when either a signal
// is received or ctx is done, and unregisters itself on the way out.
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	signal.SetupSignalHandler(ctx, cancel, func(sig os.Signal) {
//	    logging.Warn("received " + sig.String())
//	})
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func(os.Signal)) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			if onInterrupt != nil {
				onInterrupt(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()
}

// WithInterrupt returns a child of parent that is canceled on SIGINT or
// SIGTERM. The returned stop func releases the handler and must be called.
func WithInterrupt(parent context.Context, onInterrupt func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	SetupSignalHandler(ctx, cancel, onInterrupt)
	return ctx, cancel
}
