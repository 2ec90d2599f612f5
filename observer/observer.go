// Package observer is the OS-facing capability: it reports which window is
// in the foreground right now. Absence of a reading is an expected
// steady-state condition (no window, no owning process, inaccessible
// process), never an error.
package observer

// ForegroundInfo are the raw facts about the current foreground surface.
type ForegroundInfo struct {
	AppName     string
	WindowTitle string
}

// Observer yields raw foreground facts; ok is false when no reading is
// available this tick.
type Observer interface {
	Foreground() (info ForegroundInfo, ok bool)
}
