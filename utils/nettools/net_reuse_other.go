//go:build !darwin && !linux
// +build !darwin,!linux

package nettools

func reuseAddr(int) error {
	return nil
}
