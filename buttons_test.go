package msgbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonSetSuppressesClose(t *testing.T) {
	tests := []struct {
		buttons ButtonSet
		want    bool
	}{
		{ButtonsOK, false},
		{ButtonsOKCancel, false},
		{ButtonsAbortRetryIgnore, true},
		{ButtonsYesNoCancel, false},
		{ButtonsYesNo, true},
		{ButtonsRetryCancel, false},
		{ButtonsCancelTryContinue, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.buttons.SuppressesClose(), "buttons %#x", uint32(tt.buttons))
	}
}

func TestDefaultButtonFlag(t *testing.T) {
	tests := []struct {
		name    string
		buttons ButtonSet
		def     Result
		want    uint32
	}{
		{"none falls back to first button", ButtonsYesNo, ResultNone, 0},
		{"first button needs no flag", ButtonsYesNo, ResultYes, 0},
		{"ok/cancel default cancel", ButtonsOKCancel, ResultCancel, defButton2},
		{"yes/no default no", ButtonsYesNo, ResultNo, defButton2},
		{"yes/no/cancel default no", ButtonsYesNoCancel, ResultNo, defButton2},
		{"yes/no/cancel default cancel", ButtonsYesNoCancel, ResultCancel, defButton3},
		{"abort/retry/ignore default retry", ButtonsAbortRetryIgnore, ResultRetry, defButton2},
		{"abort/retry/ignore default ignore", ButtonsAbortRetryIgnore, ResultIgnore, defButton3},
		{"retry/cancel default cancel", ButtonsRetryCancel, ResultCancel, defButton2},
		{"cancel/try/continue default try", ButtonsCancelTryContinue, ResultTryAgain, defButton2},
		{"cancel/try/continue default continue", ButtonsCancelTryContinue, ResultContinue, defButton3},
		{"result outside the set is ignored", ButtonsOKCancel, ResultYes, 0},
		{"plain ok ignores defaults", ButtonsOK, ResultCancel, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultButtonFlag(tt.buttons, tt.def))
		})
	}
}
