package nettools

import (
	"context"
	"net"
	"syscall"
)

// Listen announces on the local network address with SO_REUSEADDR set where
// the platform supports it, so a restarted server can rebind its port while
// old connections linger in TIME_WAIT.
func Listen(ctx context.Context, network, address string) (net.Listener, error) {
	lc := net.ListenConfig{Control: control}
	return lc.Listen(ctx, network, address)
}

// control runs setsockopt on the raw socket before bind. It's annoying that
// RawConn.Control reports its own failure and the callback's separately.
func control(network, address string, c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = reuseAddr(int(fd))
	}); err != nil {
		return err
	}
	return serr
}
