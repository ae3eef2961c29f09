package internal

import (
	"rummy/internal/arrange"
	"rummy/internal/domain"
)

// PickupGain measures how much taking the discard improves a 13-card
// hand: deadwood points before, minus the best deadwood after taking
// the card and shedding the worst resulting card. Positive means the
// pickup helps.
func PickupGain(hand []domain.Card, top domain.Card) int {
	before := arrange.AutoArrange(hand).DeadwoodPoints

	taken := make([]domain.Card, 0, len(hand)+1)
	taken = append(taken, hand...)
	taken = append(taken, top)

	shed, after := BestDiscard(taken)
	// Taking the discard only to throw it back is a wasted turn.
	if shed.ID == top.ID {
		return 0
	}
	return before - after
}

// EvaluateHand is the deadwood-points view of a hand; lower is better.
func EvaluateHand(hand []domain.Card) int {
	return arrange.AutoArrange(hand).DeadwoodPoints
}
