package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the top-level session mode
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Action is a lifecycle hook run by the session for a phase
type Action func(ctx *Context) error

// phaseNode holds the lifecycle hooks of one phase
type phaseNode struct {
	onEnter  []Action
	onUpdate []Action
	onExit   []Action
}

// allowedTransitions lists the only legal phase changes
var allowedTransitions = map[Phase]Phase{
	PhaseMenu:     PhasePlaying,
	PhasePlaying:  PhaseGameOver,
	PhaseGameOver: PhaseMenu,
}

// Session is the Menu -> Playing -> GameOver -> Menu state machine.
// Transitions are requested during a tick and applied once at its end.
type Session struct {
	current Phase
	pending Phase
	queued  bool
	started bool
	nodes   map[Phase]*phaseNode

	// id identifies the current play session in logs; empty outside Playing
	id string
}

// NewSession creates a machine that will start in the given phase
func NewSession(initial Phase) *Session {
	return &Session{
		current: initial,
		nodes: map[Phase]*phaseNode{
			PhaseMenu:     {},
			PhasePlaying:  {},
			PhaseGameOver: {},
		},
	}
}

// OnEnter appends hooks run when phase becomes active
func (s *Session) OnEnter(phase Phase, actions ...Action) {
	s.node(phase).onEnter = append(s.node(phase).onEnter, actions...)
}

// OnUpdate appends hooks run once per tick while phase is active
func (s *Session) OnUpdate(phase Phase, actions ...Action) {
	s.node(phase).onUpdate = append(s.node(phase).onUpdate, actions...)
}

// OnExit appends hooks run when phase is left
func (s *Session) OnExit(phase Phase, actions ...Action) {
	s.node(phase).onExit = append(s.node(phase).onExit, actions...)
}

// Current returns the active phase
func (s *Session) Current() Phase {
	return s.current
}

// ID returns the identifier of the running play session
func (s *Session) ID() string {
	return s.id
}

// Pending returns the transition queued for the end of this tick
func (s *Session) Pending() (Phase, bool) {
	return s.pending, s.queued
}

// Request queues a transition to phase.
// Repeating the same request within a tick has no further effect.
func (s *Session) Request(phase Phase) error {
	if s.queued && s.pending == phase {
		return nil
	}
	if next, ok := allowedTransitions[s.current]; !ok || next != phase {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.current, phase)
	}
	s.pending = phase
	s.queued = true
	return nil
}

// Start runs the enter hooks of the initial phase; it is a no-op after the first call
func (s *Session) Start(ctx *Context) error {
	if s.started {
		return nil
	}
	s.started = true
	s.beginPhase(s.current)
	return run(ctx, s.node(s.current).onEnter)
}

// Update runs the active phase's per-tick hooks in registration order
func (s *Session) Update(ctx *Context) error {
	return run(ctx, s.node(s.current).onUpdate)
}

// Apply performs the queued transition, if any, running exit hooks of the old phase
// and enter hooks of the new one. It reports whether the phase changed.
func (s *Session) Apply(ctx *Context) (bool, error) {
	if !s.queued {
		return false, nil
	}
	from, to := s.current, s.pending
	s.queued = false

	if err := run(ctx, s.node(from).onExit); err != nil {
		return false, fmt.Errorf("exit %s: %w", from, err)
	}
	s.current = to
	s.beginPhase(to)
	ctx.Log.Info("phase transition",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("session", s.id),
	)
	if err := run(ctx, s.node(to).onEnter); err != nil {
		return true, fmt.Errorf("enter %s: %w", to, err)
	}
	return true, nil
}

func (s *Session) beginPhase(phase Phase) {
	if phase == PhasePlaying {
		s.id = uuid.NewString()
		return
	}
	if phase == PhaseMenu {
		s.id = ""
	}
}

func (s *Session) node(phase Phase) *phaseNode {
	n, ok := s.nodes[phase]
	if !ok {
		n = &phaseNode{}
		s.nodes[phase] = n
	}
	return n
}

func run(ctx *Context, actions []Action) error {
	for _, action := range actions {
		if err := action(ctx); err != nil {
			return err
		}
	}
	return nil
}
