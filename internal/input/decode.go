package input

// Key is a backend-neutral key id. Backends translate their own key codes into it.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyX
)

// KeyState is what happened to a key in one event.
type KeyState uint8

const (
	Press KeyState = iota
	Repeat
	Release
)

// bindings maps keys to actions. Diagonals have no key.
var bindings = map[Key]Action{
	KeyUp:    Up,
	KeyDown:  Down,
	KeyLeft:  Left,
	KeyRight: Right,
	KeyX:     Recolor,
}

// Decode maps one key event to an action. Press and Repeat of a bound key yield its action.
// Anything else yields None, including a Release of any key, so a release that arrives
// before the frame drains the latch clears what was just set.
func Decode(k Key, s KeyState) Action {
	if s == Release {
		return None
	}
	if a, ok := bindings[k]; ok {
		return a
	}
	return None
}
