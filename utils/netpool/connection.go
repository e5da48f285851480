package netpool

import (
	"net"
	"sync/atomic"
)

type Conn interface {
	net.Conn
	Available() bool
}

type conn struct {
	net.Conn
	IsClosed atomic.Bool
	g        *Group
}

func (c *conn) Available() bool {
	return !c.IsClosed.Load()
}

// Close closes the underlying connection once and leaves the group.
func (c *conn) Close() error {
	if !c.IsClosed.CompareAndSwap(false, true) {
		return net.ErrClosed
	}
	err := c.Conn.Close()
	c.g.release(c)
	return err
}
