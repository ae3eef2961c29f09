// Package bot picks draw, discard, declare and drop actions for
// automated players. Brains are pure functions of the turn context;
// the only asynchronous piece is the cancelable thinking timer the
// caller runs before acting on a decision.
package bot

import (
	"time"

	"rummy/internal/domain"
)

// Action is the kind of move a bot decided on.
type Action string

const (
	ActionDraw    Action = "draw"
	ActionDiscard Action = "discard"
	ActionDeclare Action = "declare"
	ActionDrop    Action = "drop"
)

// DrawSource selects where a draw action takes its card from.
type DrawSource string

const (
	SourceDeck    DrawSource = "deck"
	SourceDiscard DrawSource = "discard"
)

// TurnPhase is the bot's position within its turn.
type TurnPhase int

const (
	// PhaseDraw means the bot holds 13 cards and must draw or drop.
	PhaseDraw TurnPhase = iota
	// PhaseDiscard means the bot holds 14 cards and must shed or declare.
	PhaseDiscard
)

// Context is the read-only view a brain decides from. The engine never
// retains it across calls and has no side effects on it.
type Context struct {
	Hand            []domain.Card
	DiscardTop      *domain.Card
	DiscardHistory  []domain.Card
	Phase           TurnPhase
	FirstTurn       bool
	CumulativeScore int
	PoolLimit       int
	Decks           int
}

// Decision is a bot's chosen move. For declares, Card is the finishing
// discard and Melds the arrangement being shown. ThinkingTime is a
// presentation-only delay, not part of the decision contract.
type Decision struct {
	Action       Action        `json:"action"`
	Source       DrawSource    `json:"source,omitempty"`
	Card         *domain.Card  `json:"card,omitempty"`
	Melds        []domain.Meld `json:"melds,omitempty"`
	ThinkingTime time.Duration `json:"thinking_time"`
}

// Brain is the interface all bot strategies implement.
type Brain interface {
	Decide(ctx Context) (Decision, error)
}
