package msgbox

import (
	"errors"
)

var (
	// ErrNilOwner implies Show was called without a resolvable owner window.
	ErrNilOwner = errors.New("owner window is nil")

	// ErrOwnerGone implies the owner handle no longer refers to a live window.
	ErrOwnerGone = errors.New("owner window is gone or invalid")

	// ErrUnsupported implies the current platform has no native message box.
	ErrUnsupported = errors.New("message boxes are not supported on this platform")
)
