package msgbox

// ButtonSet selects which buttons the dialog offers. Values are the
// MB_* button flags.
type ButtonSet uint32

const (
	ButtonsOK                ButtonSet = 0x0 // MB_OK
	ButtonsOKCancel          ButtonSet = 0x1 // MB_OKCANCEL
	ButtonsAbortRetryIgnore  ButtonSet = 0x2 // MB_ABORTRETRYIGNORE
	ButtonsYesNoCancel       ButtonSet = 0x3 // MB_YESNOCANCEL
	ButtonsYesNo             ButtonSet = 0x4 // MB_YESNO
	ButtonsRetryCancel       ButtonSet = 0x5 // MB_RETRYCANCEL
	ButtonsCancelTryContinue ButtonSet = 0x6 // MB_CANCELTRYCONTINUE
)

// SuppressesClose reports whether the dialog's close button is removed for
// this set. Closing a Yes/No or Abort/Retry/Ignore box maps to no button,
// so those sets force an explicit choice; every set with a cancel path
// keeps its close button.
func (b ButtonSet) SuppressesClose() bool {
	return b == ButtonsYesNo || b == ButtonsAbortRetryIgnore
}

// Icon selects the dialog's icon. Values are the MB_ICON* flags.
type Icon uint32

const (
	IconNone        Icon = 0x00
	IconError       Icon = 0x10 // MB_ICONERROR
	IconQuestion    Icon = 0x20 // MB_ICONQUESTION
	IconWarning     Icon = 0x30 // MB_ICONWARNING
	IconInformation Icon = 0x40 // MB_ICONINFORMATION
)

// Result is the button the user chose. Values are the ID* command ids
// MessageBoxW returns.
type Result int32

const (
	ResultNone     Result = 0
	ResultOK       Result = 1  // IDOK
	ResultCancel   Result = 2  // IDCANCEL
	ResultAbort    Result = 3  // IDABORT
	ResultRetry    Result = 4  // IDRETRY
	ResultIgnore   Result = 5  // IDIGNORE
	ResultYes      Result = 6  // IDYES
	ResultNo       Result = 7  // IDNO
	ResultTryAgain Result = 10 // IDTRYAGAIN
	ResultContinue Result = 11 // IDCONTINUE
)

const (
	defButton2 = 0x100 // MB_DEFBUTTON2
	defButton3 = 0x200 // MB_DEFBUTTON3
)

// defaultButtonFlag maps the desired default result to the MB_DEFBUTTONn
// flag matching that result's position within the button set. ResultNone
// and results the set does not contain fall back to the first button.
func defaultButtonFlag(b ButtonSet, def Result) uint32 {
	switch b {
	case ButtonsOKCancel:
		if def == ResultCancel {
			return defButton2
		}
	case ButtonsAbortRetryIgnore:
		switch def {
		case ResultRetry:
			return defButton2
		case ResultIgnore:
			return defButton3
		}
	case ButtonsYesNoCancel:
		switch def {
		case ResultNo:
			return defButton2
		case ResultCancel:
			return defButton3
		}
	case ButtonsYesNo:
		if def == ResultNo {
			return defButton2
		}
	case ButtonsRetryCancel:
		if def == ResultCancel {
			return defButton2
		}
	case ButtonsCancelTryContinue:
		switch def {
		case ResultTryAgain:
			return defButton2
		case ResultContinue:
			return defButton3
		}
	}
	return 0
}
