//go:build windows

package window

import (
	"unsafe"
)

// MessageBox shows the native blocking message box and returns the id of
// the button the user chose (IDOK, IDCANCEL, ...), or 0 if the call itself
// failed. The calling thread keeps pumping messages inside the call; only
// the return to its caller is held up until the dialog is dismissed.
func MessageBox(owner uintptr, text, caption string, flags uint32) int32 {
	ret, _, _ := ProcMessageBoxW.Call(
		owner,
		uintptr(unsafe.Pointer(utf16Ptr(text))),
		uintptr(unsafe.Pointer(utf16Ptr(caption))),
		uintptr(flags),
	)
	return int32(ret)
}
