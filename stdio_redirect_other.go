//go:build !unix

package main

import (
	"fmt"
	"os"
	"time"
)

// Best-effort fallback for non-Unix platforms: runtime panics still go to
// the original stderr.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	fmt.Printf("--- iconmaker %s ---\n", time.Now().Format(time.RFC3339))
	return nil
}
