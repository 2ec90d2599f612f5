//go:build windows

package observer

import (
	"unsafe"

	"github.com/shirou/gopsutil/process"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

type windowsObserver struct{}

// New returns the foreground observer for this platform.
func New() Observer {
	return windowsObserver{}
}

func (windowsObserver) Foreground() (ForegroundInfo, bool) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return ForegroundInfo{}, false
	}

	var buf [256]uint16
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	title := "Unknown"
	if n > 0 {
		title = windows.UTF16ToString(buf[:n])
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return ForegroundInfo{}, false
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return ForegroundInfo{}, false
	}
	name, err := proc.Name()
	if err != nil {
		return ForegroundInfo{}, false
	}

	return ForegroundInfo{AppName: name, WindowTitle: title}, true
}
