//go:build darwin || linux
// +build darwin linux

package nettools

import (
	"golang.org/x/sys/unix"
)

func reuseAddr(fd int) error {
	return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
}
