//go:build windows

package screen

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procMonitorFromRect     = user32.NewProc("MonitorFromRect")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
)

// MONITOR_DEFAULTTONEAREST
const monitorDefaultToNearest = 2

type monitorInfo struct {
	Size    uint32
	Monitor Rect
	Work    Rect
	Flags   uint32
}

// WorkAreaFor returns the visible work area (screen minus taskbar and other
// appbars) of the monitor nearest to ref. The area is queried fresh on
// every call; the taskbar can move or auto-hide between calls.
func WorkAreaFor(ref Rect) (Rect, error) {
	hMon, _, _ := procMonitorFromRect.Call(uintptr(unsafe.Pointer(&ref)), monitorDefaultToNearest)
	if hMon == 0 {
		return Rect{}, fmt.Errorf("MonitorFromRect failed")
	}

	var mi monitorInfo
	mi.Size = uint32(unsafe.Sizeof(mi))
	ret, _, _ := procGetMonitorInfoW.Call(hMon, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("GetMonitorInfoW failed")
	}
	return mi.Work, nil
}

// Monitors returns a list of all active monitors.
func Monitors() ([]Monitor, error) {
	var monitors []Monitor

	cb := windows.NewCallback(func(hMonitor uintptr, hdcMonitor uintptr, lprcMonitor uintptr, dwData uintptr) uintptr {
		var mi monitorInfo
		mi.Size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			monitors = append(monitors, Monitor{
				Handle:   hMonitor,
				Bounds:   mi.Monitor,
				WorkArea: mi.Work,
				Primary:  mi.Flags&1 != 0, // MONITORINFOF_PRIMARY
			})
		}
		return 1
	})

	procEnumDisplayMonitors.Call(0, 0, cb, 0)
	return monitors, nil
}
