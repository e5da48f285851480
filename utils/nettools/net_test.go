package nettools_test

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/frankli0324/go-httpd/utils/nettools"
)

func TestListen(t *testing.T) {
	ln, err := nettools.Listen(context.Background(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		c.Write([]byte("ok"))
		c.Close()
	}()

	c, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	b, err := io.ReadAll(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "ok" {
		t.Errorf("got %q", b)
	}
}
