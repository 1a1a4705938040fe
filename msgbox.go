package msgbox

import (
	"runtime"

	"github.com/rpdg/msgbox/hook"
)

// Owner resolves to the native handle of the window that owns the dialog.
type Owner interface {
	Handle() uintptr
}

// HWND adapts a raw window handle to Owner.
type HWND uintptr

func (h HWND) Handle() uintptr { return uintptr(h) }

// system is the platform binding for everything native; tests swap it
// wholesale.
type system struct {
	err        error
	isWindow   func(wnd uintptr) bool
	messageBox func(owner uintptr, text, caption string, flags uint32) int32
	hooks      hook.Native
	adapter    Adapter
}

var sys = platformSystem()

// Show displays an OK message box centered over owner and blocks until the
// user dismisses it.
func Show(owner Owner, text, caption string) (Result, error) {
	return ShowEx(owner, text, caption, ButtonsOK, IconNone, ResultNone)
}

// ShowButtons is Show with a caller-chosen button set.
func ShowButtons(owner Owner, text, caption string, buttons ButtonSet) (Result, error) {
	return ShowEx(owner, text, caption, buttons, IconNone, ResultNone)
}

// ShowEx displays a message box with the full option set and returns the
// button the user chose. The dialog is centered over owner, clamped to the
// owner monitor's work area; for ButtonsYesNo and ButtonsAbortRetryIgnore
// the close button is removed so the user must pick a button.
// defaultResult selects which button starts focused.
//
// Centering and decoration are best effort: a refused hook or a failed
// native call still shows the dialog, just at the OS default position with
// default decorations. The only errors returned are a nil or dead owner,
// and ErrUnsupported off Windows.
func ShowEx(owner Owner, text, caption string, buttons ButtonSet, icon Icon, defaultResult Result) (Result, error) {
	if sys.err != nil {
		return ResultNone, sys.err
	}
	if owner == nil {
		return ResultNone, ErrNilOwner
	}
	wnd := owner.Handle()
	if wnd == 0 {
		return ResultNone, ErrNilOwner
	}
	if !sys.isWindow(wnd) {
		return ResultNone, ErrOwnerGone
	}

	// The hook is thread-scoped and the dialog's modal loop runs on the
	// calling thread; both must stay on one OS thread for the hook to fire.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	pass := placement{win: sys.adapter, owner: wnd, suppressClose: buttons.SuppressesClose()}
	hk := hook.NewActivation(sys.hooks, pass.apply)
	hk.Arm()
	defer hk.Disarm() // release path for a hook the dialog never triggered

	flags := uint32(buttons) | uint32(icon) | defaultButtonFlag(buttons, defaultResult)
	return Result(sys.messageBox(wnd, text, caption, flags)), nil
}
