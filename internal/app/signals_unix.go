//go:build !windows

package app

import (
	"os"
	"syscall"
)

func quitSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}
}
