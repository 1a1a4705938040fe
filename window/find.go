//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func utf16Ptr(s string) *uint16 {
	ptr, _ := windows.UTF16PtrFromString(s)
	return ptr
}

func FindByTitle(title string) (uintptr, error) {
	ret, _, _ := ProcFindWindowW.Call(
		0,
		uintptr(unsafe.Pointer(utf16Ptr(title))),
	)
	if ret == 0 {
		return 0, fmt.Errorf("window not found with title: %s", title)
	}
	return ret, nil
}

func FindByClass(class string) (uintptr, error) {
	ret, _, _ := ProcFindWindowW.Call(
		uintptr(unsafe.Pointer(utf16Ptr(class))),
		0,
	)
	if ret == 0 {
		return 0, fmt.Errorf("window not found with class: %s", class)
	}
	return ret, nil
}

// Foreground returns the handle of the current foreground window, or 0 if
// there is none (e.g. during a screen lock).
func Foreground() uintptr {
	ret, _, _ := ProcGetForegroundWindow.Call()
	return ret
}

// IsValid reports whether hwnd still refers to a live window.
func IsValid(hwnd uintptr) bool {
	ret, _, _ := ProcIsWindow.Call(hwnd)
	return ret != 0
}
