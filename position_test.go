package msgbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpdg/msgbox/screen"
)

func TestPlacementClampsToWorkArea(t *testing.T) {
	adapter := newFakeAdapter()
	adapter.rects[ownerWnd] = screen.Rect{Left: 1700, Top: 900, Right: 1920, Bottom: 1080}
	adapter.rects[dialogWnd] = screen.Rect{Left: 0, Top: 0, Right: 400, Bottom: 300}
	adapter.work = screen.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040} // 40px taskbar

	placement{win: adapter, owner: ownerWnd}.apply(dialogWnd)

	pos, ok := adapter.positioned[dialogWnd]
	assert.True(t, ok)
	assert.LessOrEqual(t, pos[0]+400, int32(1920))
	assert.LessOrEqual(t, pos[1]+300, int32(1040))
	assert.Equal(t, [2]int32{1520, 740}, pos)
}

func TestPlacementDegradesWhenOwnerRectUnavailable(t *testing.T) {
	adapter := newFakeAdapter()
	// No rect for the owner: the dialog stays where the OS put it, but the
	// style pass still runs.
	adapter.rects[dialogWnd] = screen.Rect{Left: 0, Top: 0, Right: 300, Bottom: 150}

	placement{win: adapter, owner: ownerWnd, suppressClose: true}.apply(dialogWnd)

	assert.Empty(t, adapter.positioned)
	assert.Equal(t, []uintptr{dialogWnd}, adapter.closed)
}

func TestPlacementDegradesWhenDialogRectUnavailable(t *testing.T) {
	adapter := newFakeAdapter()
	adapter.rects[ownerWnd] = screen.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}

	placement{win: adapter, owner: ownerWnd}.apply(dialogWnd)

	assert.Empty(t, adapter.positioned)
	assert.Empty(t, adapter.closed)
}
