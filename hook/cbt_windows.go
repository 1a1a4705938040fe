//go:build windows

package hook

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/rpdg/msgbox/window"
)

// WH_CBT
const whCBT = 5

// CBT is the Windows implementation of Native, backed by a thread-scoped
// WH_CBT hook.
//
// The hook procedure handed to user32 is a single process-wide trampoline:
// callbacks created with NewCallback are never released, so one is created
// for the whole process and the per-thread Callback is looked up by the id
// of the thread the event arrives on. CBT events are always delivered on
// the hooked thread itself, which makes that lookup unambiguous. At most
// one hook per thread is supported.
type CBT struct{}

var (
	cbtMu    sync.Mutex
	cbtByTID = map[uint32]Callback{}

	trampoline = windows.NewCallback(func(code, wparam, lparam uintptr) uintptr {
		tid := windows.GetCurrentThreadId()
		cbtMu.Lock()
		cb := cbtByTID[tid]
		cbtMu.Unlock()

		if cb == nil {
			ret, _, _ := window.ProcCallNextHookEx.Call(0, code, wparam, lparam)
			return ret
		}
		return cb(int32(code), wparam, lparam)
	})
)

func (CBT) Install(cb Callback) Handle {
	tid := windows.GetCurrentThreadId()

	cbtMu.Lock()
	if _, busy := cbtByTID[tid]; busy {
		cbtMu.Unlock()
		return 0
	}
	cbtByTID[tid] = cb
	cbtMu.Unlock()

	var mod windows.Handle
	_ = windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &mod)
	ret, _, _ := window.ProcSetWindowsHookExW.Call(whCBT, trampoline, uintptr(mod), uintptr(tid))
	if ret == 0 {
		cbtMu.Lock()
		delete(cbtByTID, tid)
		cbtMu.Unlock()
	}
	return Handle(ret)
}

func (CBT) Remove(h Handle) bool {
	tid := windows.GetCurrentThreadId()

	cbtMu.Lock()
	delete(cbtByTID, tid)
	cbtMu.Unlock()

	ret, _, _ := window.ProcUnhookWindowsHookEx.Call(uintptr(h))
	return ret != 0
}

func (CBT) CallNext(h Handle, code int32, wparam, lparam uintptr) uintptr {
	ret, _, _ := window.ProcCallNextHookEx.Call(uintptr(h), uintptr(code), wparam, lparam)
	return ret
}
