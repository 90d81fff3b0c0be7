//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc   = 1
	keyQ     = 16
	keyEnter = 28
	keyF4    = 62
)

var dismissKeys = map[uint16]bool{keyEsc: true, keyQ: true, keyEnter: true, keyF4: true}

// inputEventSize returns the size of struct input_event on this arch:
// timeval + u16 type + u16 code + s32 value.
func inputEventSize() (tvSize, eventSize int) {
	tvSize = binary.Size(unix.Timeval{})
	eventSize = tvSize + 2 + 2 + 4
	if tvSize <= 0 {
		tvSize, eventSize = 16, 24
	}
	return tvSize, eventSize
}

// StartDismissOnKey watches Linux evdev devices under /dev/input/event* and
// invokes onDismiss once when Esc, Q, Enter or F4 is pressed.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartDismissOnKey(ctx context.Context, logger Logger, onDismiss func()) {
	if onDismiss == nil {
		return
	}
	tvSize, eventSize := inputEventSize()

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for key dismiss")
		}
		return
	}

	var once sync.Once
	trigger := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "dismiss key pressed")
			}
			onDismiss()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, eventSize, trigger)
	}
}

func watchDevice(ctx context.Context, path string, tvSize, eventSize int, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if dismissKeyPressed(buf[:n], tvSize, eventSize) {
			trigger()
			return
		}
	}
}

// dismissKeyPressed scans a read buffer of input_event records for a key
// down event on one of the dismiss keys.
func dismissKeyPressed(buf []byte, tvSize, eventSize int) bool {
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 && dismissKeys[code] {
			return true
		}
	}
	return false
}
