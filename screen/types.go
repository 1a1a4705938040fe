package screen

// Point represents a point in the Virtual Desktop coordinate system.
// Coordinates can be negative (e.g., secondary monitor to the left of primary).
type Point struct {
	X int32
	Y int32
}

// Rect represents a rectangle in the Virtual Desktop coordinate system.
// Rects coming from external queries are used as-is; Width/Height may be
// negative if the query returned an inverted rect.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Monitor represents a physical display device.
type Monitor struct {
	Handle   uintptr
	Bounds   Rect
	WorkArea Rect // Excludes taskbar
	Primary  bool
}
