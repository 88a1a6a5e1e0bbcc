package game

// Input is the logical control state for one frame.
// Edge fields are true only on the frame the transition happened.
type Input struct {
	ThrustForward bool
	ThrustBack    bool
	RotateLeft    bool
	RotateRight   bool

	// FirePressed is the rising edge of the fire control
	FirePressed bool

	// FireHeld is true for every frame the fire control is down, including the pressed frame
	FireHeld bool

	// Confirm starts a session from the menu
	Confirm bool

	// Cancel leaves the game-over screen
	Cancel bool
}
