//go:build !unix

package system

import (
	"fmt"
	"os"
)

// CheckWritableDir returns an error unless path is an existing directory
// the current process may create files in. Without access(2) it probes by
// creating and removing a temporary file.
func CheckWritableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	f, err := os.CreateTemp(path, ".probe-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", path, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
