//go:build windows

package preflight

import (
	"errors"
	"io"
	"os"
)

func accessReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func accessWritable(path string) error {
	probe, err := os.CreateTemp(path, ".steamclip-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}
