//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"github.com/rpdg/msgbox/screen"
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

// GetRect returns the window's bounding rectangle, decorations included, in
// screen coordinates.
func GetRect(hwnd uintptr) (screen.Rect, error) {
	var r screen.Rect
	ret, _, _ := ProcGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return screen.Rect{}, fmt.Errorf("GetWindowRect failed")
	}
	return r, nil
}

// SetPosition moves the window to (x, y) without resizing it, changing its
// Z order, or activating it.
func SetPosition(hwnd uintptr, x, y int32) error {
	ret, _, _ := ProcSetWindowPos.Call(
		hwnd,
		0,
		uintptr(x),
		uintptr(y),
		0,
		0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed")
	}
	return nil
}
