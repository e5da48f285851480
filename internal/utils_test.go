package internal_test

import (
	"bytes"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type MockAddr struct {
	str string
}

func (m MockAddr) Network() string { return "tcp" }
func (m MockAddr) String() string  { return m.str }

// MockConn reads the request from in and collects the response in out.
type MockConn struct {
	in  io.Reader
	out bytes.Buffer

	readDeadline, writeDeadline time.Time
}

func NewMockConn(request string) *MockConn {
	return &MockConn{in: strings.NewReader(request)}
}

func (m *MockConn) Read(p []byte) (int, error)  { return m.in.Read(p) }
func (m *MockConn) Write(p []byte) (int, error) { return m.out.Write(p) }
func (m *MockConn) Close() error                { return nil }
func (m *MockConn) LocalAddr() net.Addr         { return MockAddr{"(server)"} }
func (m *MockConn) RemoteAddr() net.Addr        { return MockAddr{"(client)"} }

func (m *MockConn) SetDeadline(t time.Time) error {
	m.readDeadline, m.writeDeadline = t, t
	return nil
}

func (m *MockConn) SetReadDeadline(t time.Time) error {
	m.readDeadline = t
	return nil
}

func (m *MockConn) SetWriteDeadline(t time.Time) error {
	m.writeDeadline = t
	return nil
}

func ExpectEqual(t *testing.T, expect, actual string) {
	t.Helper()
	if expect != actual {
		t.Errorf("Got %q, want %q", actual, expect)
	}
}

// makeRoot creates a directory holding readme.txt ("hi\n") and docs/a.txt.
func makeRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "docs", "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}
