//go:build windows

package main

import (
	"fmt"
	"log"

	"github.com/rpdg/msgbox"
	"github.com/rpdg/msgbox/screen"
	"github.com/rpdg/msgbox/window"
)

func main() {
	fmt.Println("=== msgbox: work area example ===")

	window.EnablePerMonitorDPI()

	monitors, err := screen.Monitors()
	if err != nil {
		log.Fatal(err)
	}
	for i, m := range monitors {
		fmt.Printf("Monitor %d: bounds=%+v work=%+v primary=%v\n", i, m.Bounds, m.WorkArea, m.Primary)
	}

	// Show a warning over whichever window is in the foreground; the dialog
	// lands on that window's monitor, clamped to its work area.
	owner := window.Foreground()
	if owner == 0 {
		log.Println("❌ No foreground window.")
		return
	}

	res, err := msgbox.ShowEx(
		msgbox.HWND(owner),
		"Retry the operation?",
		"msgbox example",
		msgbox.ButtonsAbortRetryIgnore,
		msgbox.IconWarning,
		msgbox.ResultRetry,
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("👉 User chose: %d\n", res)
}
