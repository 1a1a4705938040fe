//go:build windows

package main

import (
	"fmt"
	"log"

	"github.com/rpdg/msgbox"
	"github.com/rpdg/msgbox/window"
)

func main() {
	fmt.Println("=== msgbox: centered message box example ===")
	fmt.Println("The dialog opens centered over Notepad, not in the middle of the screen.")

	// 1. Enable DPI Awareness so rects come back in physical pixels.
	window.EnablePerMonitorDPI()

	// 2. Find the owner window.
	hwnd, err := window.FindByClass("Notepad")
	if err != nil {
		log.Println("❌ Notepad not found. Please open Notepad to run this example.")
		return
	}
	fmt.Printf("✅ Found Notepad handle: %x\n", hwnd)

	// 3. Yes/No: no close button, the user has to pick.
	res, err := msgbox.ShowButtons(msgbox.HWND(hwnd), "Keep these changes?", "msgbox example", msgbox.ButtonsYesNo)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("👉 User chose: %d\n", res)

	// 4. Plain OK box, close button intact.
	msgbox.Show(msgbox.HWND(hwnd), "All done.", "msgbox example")

	fmt.Println("=== Done ===")
}
