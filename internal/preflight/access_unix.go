//go:build unix

package preflight

import "golang.org/x/sys/unix"

func accessReadable(path string) error {
	return unix.Access(path, unix.R_OK|unix.X_OK)
}

func accessWritable(path string) error {
	return unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK)
}
