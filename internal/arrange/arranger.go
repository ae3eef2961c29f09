// Package arrange partitions a rummy hand into melds plus deadwood.
//
// The solver anchors on pure sequences: it enumerates every pure
// sequence the naturals can form (including all sub-runs of longer
// runs), packs the remainder greedily around each anchor, and keeps the
// cheapest result. The first arrangement that forms a fully legal
// declaration short-circuits the search, since every legal declaration
// scores the same zero deadwood.
package arrange

import (
	"rummy/internal/domain"
)

// Analysis is the arranger's verdict on a hand snapshot.
type Analysis struct {
	Melds           []domain.Meld `json:"melds"`
	Deadwood        []domain.Card `json:"deadwood"`
	DeadwoodPoints  int           `json:"deadwood_points"`
	HasPureSequence bool          `json:"has_pure_sequence"`
	SequenceCount   int           `json:"sequence_count"`
	CanDeclare      bool          `json:"can_declare"`
}

// AutoArrange computes the best found arrangement of the given cards.
// Malformed cards are filtered and contribute nothing; the worst case
// is zero melds with the whole hand as deadwood, never a failure.
func AutoArrange(hand []domain.Card) Analysis {
	cards := domain.FilterValid(hand)
	jokers, naturals := domain.SplitJokers(cards)

	candidates := enumeratePureSequences(naturals)
	if len(candidates) == 0 {
		melds, leftover, unused := packRemainder(naturals, jokers, nil)
		return finalize(melds, leftover, unused)
	}

	var best Analysis
	haveBest := false
	for _, cand := range candidates {
		anchor := domain.Meld{Type: domain.MeldPureSequence, Cards: cand}
		rest := domain.RemoveCards(naturals, cand)
		melds, leftover, unused := packRemainder(rest, jokers, []domain.Meld{anchor})
		a := finalize(melds, leftover, unused)
		if a.CanDeclare && a.DeadwoodPoints == 0 {
			return a
		}
		if !haveBest || better(a, best) {
			best = a
			haveBest = true
		}
	}
	return best
}

func better(a, b Analysis) bool {
	if a.CanDeclare != b.CanDeclare {
		return a.CanDeclare
	}
	if a.DeadwoodPoints != b.DeadwoodPoints {
		return a.DeadwoodPoints < b.DeadwoodPoints
	}
	// On equal points, prefer the arrangement closer to a legal show.
	if a.SequenceCount != b.SequenceCount {
		return a.SequenceCount > b.SequenceCount
	}
	return len(a.Deadwood) < len(b.Deadwood)
}

// finalize assembles the Analysis and checks declarability through the
// same validator real declarations go through.
func finalize(melds []domain.Meld, leftover, unusedJokers []domain.Card) Analysis {
	deadwood := make([]domain.Card, 0, len(leftover)+len(unusedJokers))
	deadwood = append(deadwood, leftover...)
	deadwood = append(deadwood, unusedJokers...)
	domain.SortByRank(deadwood)
	sortMeldsForOutput(melds)

	a := Analysis{
		Melds:          melds,
		Deadwood:       deadwood,
		DeadwoodPoints: domain.SumValues(deadwood),
	}
	for _, m := range melds {
		if m.IsSequence() {
			a.SequenceCount++
		}
		if m.IsPure() {
			a.HasPureSequence = true
		}
	}

	groups := make([][]domain.Card, len(melds))
	for i, m := range melds {
		groups[i] = m.Cards
	}
	a.CanDeclare = domain.ValidateDeclaration(groups, deadwood).IsValid
	return a
}
