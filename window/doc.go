// Package window wraps the user32 primitives msgbox needs: window lookup
// and validity, bounding rects, repositioning, style bits, and the native
// message box call. Everything here requires Windows; other platforms get
// an empty package.
package window
