//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package wcsv

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// readFile reads path into memory and hands its contents to fn.
func readFile(path string, limit int64, fn func(data []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return ioError("open", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ioError("stat", path, err)
	}
	if info.IsDir() {
		return ioError("stat", path, errors.New("is a directory"))
	}

	size := info.Size()
	if size > limit {
		return sizeError("stat", path, size, limit)
	}

	length := int(size)
	data := make([]byte, length)
	n, err := io.ReadFull(f, data)
	if err != nil {
		return ioError("read", path, fmt.Errorf("read %d of %d bytes: %w", n, length, err))
	}
	return fn(data)
}
