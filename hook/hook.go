// Package hook implements a single-shot, thread-scoped window activation
// hook. The hook is armed immediately before a blocking modal call,
// consumed by the first activation notification it sees, and forwards
// everything else down the hook chain untouched.
package hook

// Handle identifies an installed hook. Zero means no hook.
type Handle uintptr

// Callback is the hook procedure invoked for every event delivered to the
// hooked thread while the hook is installed.
type Callback func(code int32, wparam, lparam uintptr) uintptr

// Native abstracts the platform's thread-hook operations. Install and
// Remove must run on the thread whose message queue is being hooked;
// installing from any other thread means the hook silently never fires.
type Native interface {
	// Install registers cb as a hook on the calling thread. Returns zero
	// if the platform refused the hook.
	Install(cb Callback) Handle

	// Remove uninstalls a previously installed hook.
	Remove(h Handle) bool

	// CallNext forwards an event to the next hook in the chain and returns
	// its result.
	CallNext(h Handle, code int32, wparam, lparam uintptr) uintptr
}

// CodeActivate is the notification sent when a window is about to become
// active (HCBT_ACTIVATE); wparam carries the window's handle.
const CodeActivate = 5

// Activation is a one-shot subscription to the next window activation on
// the calling thread. It belongs to exactly one blocking call: Arm right
// before the call, Disarm after it returns. The hook removes itself when it
// fires, so Disarm only does work for a hook that never saw an activation
// (e.g. dialog creation failed before the window came up). Removal happens
// exactly once across all paths; an unreleased hook handle corrupts the
// thread's hook chain for the rest of its life.
type Activation struct {
	native     Native
	onActivate func(wnd uintptr)
	handle     Handle
	fired      bool
}

// NewActivation returns a disarmed hook that will run onActivate with the
// activated window's handle, once.
func NewActivation(native Native, onActivate func(wnd uintptr)) *Activation {
	return &Activation{native: native, onActivate: onActivate}
}

// Arm installs the hook on the calling thread. Returns false if the
// platform refused it; the caller proceeds without repositioning, which is
// a degraded outcome, not an error.
func (a *Activation) Arm() bool {
	if a.handle != 0 {
		return true
	}
	a.handle = a.native.Install(a.proc)
	return a.handle != 0
}

// Armed reports whether the hook is currently installed.
func (a *Activation) Armed() bool {
	return a.handle != 0
}

// Fired reports whether the hook has consumed its activation event.
func (a *Activation) Fired() bool {
	return a.fired
}

// Disarm removes a hook that never fired. Safe to call repeatedly and
// after the hook has already removed itself.
func (a *Activation) Disarm() {
	h := a.handle
	if h == 0 {
		return
	}
	a.handle = 0
	a.native.Remove(h)
}

func (a *Activation) proc(code int32, wparam, lparam uintptr) uintptr {
	h := a.handle
	if code == CodeActivate && !a.fired && h != 0 {
		a.fired = true
		if a.onActivate != nil {
			a.onActivate(wparam)
		}
		a.handle = 0
		a.native.Remove(h)
	}
	// Forwarding is mandatory, consumed event included; skipping it starves
	// any other hook the host process owns on this thread.
	return a.native.CallNext(h, code, wparam, lparam)
}
