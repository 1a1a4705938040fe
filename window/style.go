//go:build windows

package window

import (
	"fmt"
)

// GWL_STYLE is (int)(-16)
var gwlStyle = ^uintptr(15)

// WS_SYSMENU: the title-bar system menu, which carries the close button.
const wsSysMenu = 0x00080000

// Style returns the window's style bits (GWL_STYLE).
func Style(hwnd uintptr) (uint32, error) {
	ret, _, _ := ProcGetWindowLongW.Call(hwnd, gwlStyle)
	if ret == 0 {
		return 0, fmt.Errorf("GetWindowLong failed")
	}
	return uint32(ret), nil
}

// SetStyle replaces the window's style bits (GWL_STYLE).
func SetStyle(hwnd uintptr, style uint32) error {
	ret, _, _ := ProcSetWindowLongW.Call(hwnd, gwlStyle, uintptr(style))
	if ret == 0 {
		return fmt.Errorf("SetWindowLong failed")
	}
	return nil
}

// DisableClose clears WS_SYSMENU, which removes the close button (and the
// rest of the system menu) for the life of the window. Other style bits are
// left untouched. Must run before the window is shown to avoid a visible
// decoration change.
func DisableClose(hwnd uintptr) error {
	style, err := Style(hwnd)
	if err != nil {
		return err
	}
	return SetStyle(hwnd, style&^wsSysMenu)
}
