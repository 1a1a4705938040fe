//go:build !windows

package msgbox

// Message boxes need user32; every other platform reports ErrUnsupported.
func platformSystem() system {
	return system{err: ErrUnsupported}
}
