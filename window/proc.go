//go:build windows

package window

import (
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	ProcFindWindowW         = user32.NewProc("FindWindowW")
	ProcGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	ProcIsWindow            = user32.NewProc("IsWindow")

	ProcGetWindowRect = user32.NewProc("GetWindowRect")
	ProcSetWindowPos  = user32.NewProc("SetWindowPos")

	ProcGetWindowLongW = user32.NewProc("GetWindowLongW")
	ProcSetWindowLongW = user32.NewProc("SetWindowLongW")

	ProcMessageBoxW = user32.NewProc("MessageBoxW")

	ProcSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	ProcUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	ProcCallNextHookEx      = user32.NewProc("CallNextHookEx")

	ProcSetProcessDpiAwarenessCtx = user32.NewProc("SetProcessDpiAwarenessContext")
)
