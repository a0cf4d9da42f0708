// Package baseutils collects small helper primitives shared by the driver
// tooling. The interesting pieces live in the sub packages: sort carries the
// generic merge sort, bitfield the packed bit-field operations, numstr the
// numeric string helpers and bufpool a reusable scratch buffer pool.
package baseutils

import (
	"os"
	"os/signal"
	"syscall"
)

var (
	onlyOneSignalHandler = make(chan struct{})
	shutdownSignals      = []os.Signal{os.Interrupt, syscall.SIGTERM}
)

// SetupSignalHandler creates and returns a channel. The channel will be closed up on receiving
// the interrupt or termination signal, if a second signal is received, the calling program is forced to terminate.
func SetupSignalHandler() (stopCh <-chan struct{}) {
	close(onlyOneSignalHandler) // panics when called twice

	stop := make(chan struct{})
	c := make(chan os.Signal, 2)
	signal.Notify(c, shutdownSignals...)
	go func() {
		<-c
		close(stop)
		<-c
		os.Exit(1)
	}()

	return stop
}
