package httpd

import "io"

type rw struct {
	in, out []byte
}

func (c *rw) Read(p []byte) (int, error) {
	if len(c.in) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.in)
	c.in = c.in[n:]
	return n, nil
}

func (c *rw) Write(p []byte) (int, error) {
	c.out = append(c.out, p...)
	return len(p), nil
}
