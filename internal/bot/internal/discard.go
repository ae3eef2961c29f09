package internal

import (
	"rummy/internal/arrange"
	"rummy/internal/domain"
)

// BestDiscard searches every non-joker discard from a 14-card hand and
// returns the one leaving the cheapest 13-card arrangement, plus that
// arrangement's deadwood points. Ties break toward shedding the higher
// value card. Jokers are never discarded; an all-joker hand falls back
// to the last card.
func BestDiscard(hand []domain.Card) (domain.Card, int) {
	bestIdx := -1
	bestPoints := 0
	for i, c := range hand {
		if c.IsJoker() {
			continue
		}
		rest := withoutIndex(hand, i)
		points := arrange.AutoArrange(rest).DeadwoodPoints
		if bestIdx < 0 || points < bestPoints ||
			(points == bestPoints && c.Value() > hand[bestIdx].Value()) {
			bestIdx = i
			bestPoints = points
		}
	}
	if bestIdx < 0 {
		last := hand[len(hand)-1]
		return last, arrange.AutoArrange(hand[:len(hand)-1]).DeadwoodPoints
	}
	return hand[bestIdx], bestPoints
}

// GreedyDiscard sheds the highest value card of the current deadwood
// without searching, falling back to the highest value non-joker when
// everything melds.
func GreedyDiscard(hand []domain.Card) domain.Card {
	a := arrange.AutoArrange(hand)

	var pick *domain.Card
	for i := range a.Deadwood {
		c := &a.Deadwood[i]
		if c.IsJoker() {
			continue
		}
		if pick == nil || c.Value() > pick.Value() {
			pick = c
		}
	}
	if pick != nil {
		return *pick
	}

	for i := range hand {
		c := &hand[i]
		if c.IsJoker() {
			continue
		}
		if pick == nil || c.Value() > pick.Value() {
			pick = c
		}
	}
	if pick != nil {
		return *pick
	}
	return hand[len(hand)-1]
}

func withoutIndex(hand []domain.Card, i int) []domain.Card {
	out := make([]domain.Card, 0, len(hand)-1)
	out = append(out, hand[:i]...)
	out = append(out, hand[i+1:]...)
	return out
}
