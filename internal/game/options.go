package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FailurePolicy decides what happens to the player's message when the model
// fails to answer it.
type FailurePolicy int

const (
	// PolicyRollback removes the optimistic user message and reports the
	// failure through State.Notice. Chat implementations drop a failed
	// exchange from their history too, so both sides stay in step.
	PolicyRollback FailurePolicy = iota
	// PolicyPreserve keeps the user message and appends a diagnostic
	// narrator message after it.
	PolicyPreserve
)

func (p FailurePolicy) String() string {
	switch p {
	case PolicyRollback:
		return "rollback"
	case PolicyPreserve:
		return "preserve"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy accepts "rollback" or "preserve".
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rollback":
		return PolicyRollback, nil
	case "preserve":
		return PolicyPreserve, nil
	default:
		return 0, fmt.Errorf("unknown failure policy %q", s)
	}
}

// Option configures a Game.
type Option func(*Game)

func WithPrompts(p Prompts) Option {
	return func(g *Game) { g.prompts = p }
}

func WithFailurePolicy(p FailurePolicy) Option {
	return func(g *Game) { g.policy = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(g *Game) { g.metrics = m }
}

// WithRecorder sets the transcript sink. Recording errors are logged only.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithIDGenerator overrides how session IDs are minted.
func WithIDGenerator(f func() string) Option {
	return func(g *Game) { g.newID = f }
}

func defaultID() string { return uuid.NewString() }
