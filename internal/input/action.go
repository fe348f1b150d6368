package input

// Action is the semantic meaning of a decoded key press.
type Action uint8

const (
	None Action = iota
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	Recolor
)

var actionNames = [...]string{
	None:      "none",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	DownRight: "down-right",
	Recolor:   "recolor",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Vertical returns the vertical component of a movement action (Up, Down or None).
func (a Action) Vertical() Action {
	switch a {
	case Up, UpLeft, UpRight:
		return Up
	case Down, DownLeft, DownRight:
		return Down
	}
	return None
}

// Horizontal returns the horizontal component of a movement action (Left, Right or None).
func (a Action) Horizontal() Action {
	switch a {
	case Left, UpLeft, DownLeft:
		return Left
	case Right, UpRight, DownRight:
		return Right
	}
	return None
}
