package game

// FireControl gates how often the player can shoot.
// Pressing fire shoots at once; holding it shoots again every cooldown period.
type FireControl struct {
	cooldown *Timer
}

// NewFireControl creates fire control with a repeating cooldown
func NewFireControl(cfg Config) *FireControl {
	return &FireControl{
		cooldown: NewTimer(cfg.FireCooldown, true),
	}
}

// Reset clears any partially elapsed cooldown
func (f *FireControl) Reset() {
	f.cooldown.Reset()
}

// Cooldown exposes the cooldown timer
func (f *FireControl) Cooldown() *Timer {
	return f.cooldown
}

// Update returns how many shots to fire this frame (0 or 1)
func (f *FireControl) Update(in Input, dt float64) int {
	if in.FirePressed {
		// Instant shot on the rising edge; the cooldown restarts from here
		f.cooldown.Reset()
		return 1
	}
	if in.FireHeld && f.cooldown.Tick(secondsToDuration(dt)).JustFinished() {
		return 1
	}
	return 0
}
