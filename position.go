package msgbox

import (
	"github.com/rpdg/msgbox/screen"
)

// Adapter provides the windowing operations the placement pass needs. The
// Windows build binds it to user32 (see platform_windows.go); tests
// substitute fakes.
type Adapter interface {
	// WindowRect returns a window's bounding rect in screen coordinates.
	WindowRect(wnd uintptr) (screen.Rect, bool)

	// WorkArea returns the visible work area of the monitor nearest ref.
	WorkArea(ref screen.Rect) (screen.Rect, bool)

	// SetPosition moves a window without resizing, reordering, or
	// activating it.
	SetPosition(wnd uintptr, x, y int32) bool

	// DisableClose removes the window's close affordance.
	DisableClose(wnd uintptr) bool
}

// placement is the work done when the dialog activates: center it over the
// owner, clamp to the work area, and optionally strip the close button.
// Every step is best effort; a failed query or move leaves the dialog where
// the OS put it, and a failed style write leaves the close button visible.
type placement struct {
	win           Adapter
	owner         uintptr
	suppressClose bool
}

func (p placement) apply(dialog uintptr) {
	if ownerRect, ok := p.win.WindowRect(p.owner); ok {
		if dialogRect, ok := p.win.WindowRect(dialog); ok {
			if work, ok := p.win.WorkArea(ownerRect); ok {
				x, y := screen.CenterAndClamp(ownerRect, dialogRect, work)
				p.win.SetPosition(dialog, x, y)
			}
		}
	}
	if p.suppressClose {
		p.win.DisableClose(dialog)
	}
}
