package game

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPlayer means the Playing phase is active without a player entity
	ErrNoPlayer = errors.New("no player entity")

	// ErrMultiplePlayers means more than one player entity exists
	ErrMultiplePlayers = errors.New("more than one player entity")

	// ErrInvalidSize means an asteroid size tier outside 1..3 was requested
	ErrInvalidSize = errors.New("asteroid size out of range")

	// ErrInvalidDelta means the frame delta was negative or not a finite number
	ErrInvalidDelta = errors.New("invalid frame delta")

	// ErrNoRandomSource means the simulation was created without a random generator
	ErrNoRandomSource = errors.New("no random source")

	// ErrInvalidTransition means a phase change outside Menu -> Playing -> GameOver -> Menu was requested
	ErrInvalidTransition = errors.New("invalid phase transition")

	// ErrRandomSource means the random generator produced an unusable value
	ErrRandomSource = errors.New("random source produced an unusable value")
)

// InvariantError reports a broken simulation invariant; the tick that returns it must not continue
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
