package game

import "fmt"

// Scoreboard tracks points and remaining lives for the current session
type Scoreboard struct {
	// Points never decrease during a session
	Points int

	// Lives goes below zero on the death that ends the session
	Lives int
}

// Reset starts a new session with zero points
func (s *Scoreboard) Reset(lives int) {
	s.Points = 0
	s.Lives = lives
}

// Award adds points; negative amounts are ignored
func (s *Scoreboard) Award(points int) {
	if points <= 0 {
		return
	}
	s.Points += points
}

// LoseLife takes one life and returns how many are left
func (s *Scoreboard) LoseLife() int {
	s.Lives--
	return s.Lives
}

// Exhausted reports whether the session is over
func (s *Scoreboard) Exhausted() bool {
	return s.Lives < 0
}

// ScoreText is the score line shown by the HUD
func (s *Scoreboard) ScoreText() string {
	return fmt.Sprintf("SCORE: %d", s.Points)
}

// LivesText is the lives line shown by the HUD
func (s *Scoreboard) LivesText() string {
	return fmt.Sprintf("LIVES: %d", s.Lives)
}
