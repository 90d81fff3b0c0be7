package system

// Logger is the component-tagged logger used by system helpers.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// EnterGraphicsConsole puts the console into graphics mode and hides the
// cursor. Failures are logged, not returned: a console that stays in text
// mode only means the preview may be overdrawn. The returned func undoes
// both steps.
func EnterGraphicsConsole(l Logger) (restore func()) {
	logResult(l, SetGraphicsMode(), "KD_GRAPHICS set", "set graphics mode failed")
	logResult(l, HideCursor(), "cursor hidden", "hide cursor failed")
	return func() {
		logResult(l, ShowCursor(), "cursor shown", "show cursor failed")
		logResult(l, RestoreTextMode(), "KD_TEXT set", "restore text mode failed")
	}
}

func logResult(l Logger, err error, ok, failed string) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
		return
	}
	l.Infof("tty", "%s", ok)
}
