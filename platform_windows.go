//go:build windows

package msgbox

import (
	"github.com/rpdg/msgbox/hook"
	"github.com/rpdg/msgbox/screen"
	"github.com/rpdg/msgbox/window"
)

// user32Adapter backs the placement pass with real user32 calls.
type user32Adapter struct{}

func (user32Adapter) WindowRect(wnd uintptr) (screen.Rect, bool) {
	r, err := window.GetRect(wnd)
	return r, err == nil
}

func (user32Adapter) WorkArea(ref screen.Rect) (screen.Rect, bool) {
	r, err := screen.WorkAreaFor(ref)
	return r, err == nil
}

func (user32Adapter) SetPosition(wnd uintptr, x, y int32) bool {
	return window.SetPosition(wnd, x, y) == nil
}

func (user32Adapter) DisableClose(wnd uintptr) bool {
	return window.DisableClose(wnd) == nil
}

func platformSystem() system {
	return system{
		isWindow:   window.IsValid,
		messageBox: window.MessageBox,
		hooks:      hook.CBT{},
		adapter:    user32Adapter{},
	}
}
