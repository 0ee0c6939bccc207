// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"

	"github.com/ulikunitz/lzw/xio"
)

// signalHandler establishes the handler for the termination signals and
// handles them in its own go routine. The files at paths are removed
// unless keep is set. The returned quit channel must be closed to
// terminate the go routine.
func signalHandler(keep bool, paths ...string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, termsigs...)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			for _, path := range paths {
				xio.Cleanup(path, keep)
			}
			os.Exit(7)
		}
	}()
	return quit
}
