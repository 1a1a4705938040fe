package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNative struct {
	installs int
	removes  int
	forwards []int32
	refuse   bool
	last     Handle
}

func (f *fakeNative) Install(cb Callback) Handle {
	f.installs++
	if f.refuse {
		return 0
	}
	f.last++
	return f.last
}

func (f *fakeNative) Remove(h Handle) bool {
	f.removes++
	return true
}

func (f *fakeNative) CallNext(h Handle, code int32, wparam, lparam uintptr) uintptr {
	f.forwards = append(f.forwards, code)
	return 0
}

func TestActivationFiresOnce(t *testing.T) {
	native := &fakeNative{}
	var got []uintptr
	a := NewActivation(native, func(wnd uintptr) { got = append(got, wnd) })

	require.True(t, a.Arm())
	require.True(t, a.Armed())

	// Unrelated notification: forwarded, hook stays armed.
	a.proc(3, 0, 0)
	assert.Empty(t, got)
	assert.True(t, a.Armed())
	assert.Equal(t, 0, native.removes)

	// First activation: handled, hook removes itself, event still forwarded.
	a.proc(CodeActivate, 42, 0)
	assert.Equal(t, []uintptr{42}, got)
	assert.True(t, a.Fired())
	assert.False(t, a.Armed())
	assert.Equal(t, 1, native.removes)

	// Further activations route straight through.
	a.proc(CodeActivate, 43, 0)
	a.proc(CodeActivate, 44, 0)
	assert.Equal(t, []uintptr{42}, got)
	assert.Equal(t, 1, native.removes)

	assert.Equal(t, []int32{3, CodeActivate, CodeActivate, CodeActivate}, native.forwards)
}

func TestActivationNegativeCodeForwarded(t *testing.T) {
	native := &fakeNative{}
	fired := false
	a := NewActivation(native, func(uintptr) { fired = true })

	require.True(t, a.Arm())
	a.proc(-1, 0, 0)

	assert.False(t, fired)
	assert.True(t, a.Armed())
	assert.Equal(t, []int32{-1}, native.forwards)
}

func TestActivationArmRefused(t *testing.T) {
	native := &fakeNative{refuse: true}
	a := NewActivation(native, func(uintptr) {})

	assert.False(t, a.Arm())
	assert.False(t, a.Armed())
	assert.Equal(t, 1, native.installs)

	// Nothing installed, nothing to release.
	a.Disarm()
	assert.Equal(t, 0, native.removes)
}

func TestActivationArmIsIdempotent(t *testing.T) {
	native := &fakeNative{}
	a := NewActivation(native, func(uintptr) {})

	require.True(t, a.Arm())
	require.True(t, a.Arm())
	assert.Equal(t, 1, native.installs)
}

func TestActivationDisarmWithoutFiring(t *testing.T) {
	native := &fakeNative{}
	a := NewActivation(native, func(uintptr) {})

	require.True(t, a.Arm())
	a.Disarm()
	assert.Equal(t, 1, native.removes)
	assert.False(t, a.Armed())

	// Second Disarm is a no-op.
	a.Disarm()
	assert.Equal(t, 1, native.removes)
}

func TestActivationDisarmAfterFiring(t *testing.T) {
	native := &fakeNative{}
	a := NewActivation(native, func(uintptr) {})

	require.True(t, a.Arm())
	a.proc(CodeActivate, 7, 0)
	require.Equal(t, 1, native.removes)

	// The hook already removed itself; Disarm must not release twice.
	a.Disarm()
	assert.Equal(t, 1, native.removes)
}
