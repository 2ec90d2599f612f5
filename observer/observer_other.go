//go:build !windows

package observer

type noopObserver struct{}

// New returns the foreground observer for this platform. Only Windows is
// wired for now; elsewhere the capability reports no reading, which keeps
// the daemon and the dashboard usable for development.
func New() Observer {
	return noopObserver{}
}

func (noopObserver) Foreground() (ForegroundInfo, bool) {
	return ForegroundInfo{}, false
}
