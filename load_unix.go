//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package wcsv

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// fstat is replaced in tests to report a size the file does not have.
var fstat = unix.Fstat

// readFile reads exactly the size fstat reports for path and hands the
// bytes to fn. A file that shrinks before the read completes is an ErrIO
// failure.
func readFile(path string, limit int64, fn func(data []byte) error) error {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return ioError("open", path, err)
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := fstat(fd, &st); err != nil {
		return ioError("stat", path, err)
	}
	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		return ioError("stat", path, unix.EISDIR)
	}
	if st.Size > limit {
		return sizeError("stat", path, st.Size, limit)
	}

	data, err := preadFull(fd, path, int(st.Size))
	if err != nil {
		return err
	}
	return fn(data)
}

// preadFull reads length bytes from the start of fd. Getting fewer bytes
// is an error.
func preadFull(fd int, path string, length int) ([]byte, error) {
	data := make([]byte, length)
	n := 0
	for n < length {
		m, err := unix.Pread(fd, data[n:], int64(n))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return nil, ioError("read", path, err)
		}
		if m == 0 {
			break
		}
		n += m
	}
	if n != length {
		return nil, ioError("read", path, fmt.Errorf("read %d of %d bytes", n, length))
	}
	return data, nil
}
