package netpool

import (
	"net"
	"sync"
)

// Group keeps track of connections handed out by an accept loop, so that a
// shutting down server can wait for them to finish or close them outright.
type Group struct {
	sync.Mutex
	conns map[*conn]struct{}
	wg    sync.WaitGroup
}

func NewGroup() *Group {
	return &Group{conns: map[*conn]struct{}{}}
}

// Track registers c with the group. The returned Conn must be closed to
// leave the group.
func (g *Group) Track(c net.Conn) Conn {
	tc := &conn{Conn: c, g: g}
	g.Lock()
	g.conns[tc] = struct{}{}
	g.Unlock()
	g.wg.Add(1)
	return tc
}

// Len returns the number of connections not yet closed.
func (g *Group) Len() int {
	g.Lock()
	defer g.Unlock()
	return len(g.conns)
}

// Wait blocks until every tracked connection has been closed.
func (g *Group) Wait() {
	g.wg.Wait()
}

// CloseAll closes every tracked connection, returning the first error.
func (g *Group) CloseAll() (err error) {
	g.Lock()
	conns := make([]*conn, 0, len(g.conns))
	for c := range g.conns {
		conns = append(conns, c)
	}
	g.Unlock()
	for _, c := range conns {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return
}

func (g *Group) release(c *conn) {
	g.Lock()
	delete(g.conns, c)
	g.Unlock()
	g.wg.Done()
}
