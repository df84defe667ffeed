package kui

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// DataReady reports whether fd has a byte to read, waiting at most
// timeout.
func DataReady(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	ms := int(timeout / time.Millisecond)
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// ReadKey reads one byte from fd, waiting at most timeout. It returns
// zero when the wait elapses with nothing to read and io.EOF when the
// descriptor is at end of file.
func ReadKey(fd int, timeout time.Duration) (KeyCode, error) {
	ready, err := DataReady(fd, timeout)
	if err != nil {
		return 0, err
	}
	if !ready {
		return 0, nil
	}
	var buf [1]byte
	for {
		n, err := unix.Read(fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return KeyCode(buf[0]), nil
	}
}
