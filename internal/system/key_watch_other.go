//go:build !linux

package system

import "context"

// StartDismissOnKey is a no-op off linux; the display ends on timeout or signal.
func StartDismissOnKey(ctx context.Context, logger Logger, onDismiss func()) {
	if logger != nil {
		logger.Infof("input", "key dismiss unsupported on this platform")
	}
}
