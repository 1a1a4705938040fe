package screen

// CenterAndClamp computes the top-left position that centers child over
// owner, then pulls the result back into work.
//
// The clamp order is fixed: bottom, right, top, left. Later clamps override
// earlier ones, so a child larger than the work area ends up pinned to the
// work area's top-left corner even though that reintroduces bottom/right
// overflow. Do not reorder.
func CenterAndClamp(owner, child, work Rect) (x, y int32) {
	x = owner.Left + (owner.Width()-child.Width())/2
	y = owner.Top + (owner.Height()-child.Height())/2

	if y+child.Height() > work.Bottom {
		y = work.Bottom - child.Height()
	}
	if x+child.Width() > work.Right {
		x = work.Right - child.Width()
	}
	if y < work.Top {
		y = work.Top
	}
	if x < work.Left {
		x = work.Left
	}
	return x, y
}
