package rlbackend

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"moving-square/internal/input"
)

// lastKey bounds the raylib key code range scanned for releases (KEY_KB_MENU is the highest).
const lastKey = rl.KeyKbMenu

// repeatKeys are checked for auto-repeat every frame; only bound keys can latch an action.
var repeatKeys = []int32{rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight, rl.KeyX}

// keyQueries are raylib's per-frame keyboard state functions.
type keyQueries struct {
	released func(key int32) bool
	pressed  func() int32
	repeated func(key int32) bool
}

// feedKeys replays one frame of keyboard state into latch in event order: releases of any key
// first, then the queued presses, then repeats. A press in the same frame therefore wins over a
// release, and a release of any key with nothing pressed after it clears the latch.
func feedKeys(latch *input.Latch, q keyQueries) {
	for k := int32(1); k <= lastKey; k++ {
		if q.released(k) {
			latch.Feed(translateKey(k), input.Release)
		}
	}
	for k := q.pressed(); k != 0; k = q.pressed() {
		latch.Feed(translateKey(k), input.Press)
	}
	for _, k := range repeatKeys {
		if q.repeated(k) {
			latch.Feed(translateKey(k), input.Repeat)
		}
	}
}
