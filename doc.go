// Package msgbox shows native Windows message boxes centered over an owner
// window instead of at the default screen position.
//
// MessageBoxW places its dialog wherever the OS decides. msgbox installs a
// one-shot, thread-scoped CBT hook right before the blocking call; when the
// new dialog activates, the hook centers it over the owner, clamps it to
// the owner monitor's work area, strips the close button for button sets
// that demand an explicit choice (Yes/No, Abort/Retry/Ignore), removes
// itself, and forwards the event down the hook chain. Positioning is best
// effort: if any native step fails, the dialog simply appears where the OS
// put it.
//
// Example:
//
//	hwnd, err := window.FindByTitle("Untitled - Notepad")
//	if err != nil {
//	    panic(err)
//	}
//
//	res, err := msgbox.ShowButtons(msgbox.HWND(hwnd), "Save changes?", "Editor", msgbox.ButtonsYesNo)
//	if res == msgbox.ResultYes {
//	    // ...
//	}
package msgbox
