package domain

import "sort"

// RemoveCards removes the specified cards from a hand by ID and returns
// the updated hand. Multiset semantics: each removal consumes one card.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return append([]Card{}, hand...)
	}
	removeCounts := make(map[string]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c.ID]++
	}
	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if count, ok := removeCounts[c.ID]; ok && count > 0 {
			removeCounts[c.ID] = count - 1
			continue
		}
		updated = append(updated, c)
	}
	return updated
}

// SortByRank orders cards ascending by rank, then suit, then ID, with
// jokers last. Sorting is stable across calls for deterministic output.
func SortByRank(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		ci, cj := cards[i], cards[j]
		if ci.IsJoker() != cj.IsJoker() {
			return !ci.IsJoker()
		}
		if ci.Rank != cj.Rank {
			return ci.Rank < cj.Rank
		}
		if ci.Suit != cj.Suit {
			return ci.Suit < cj.Suit
		}
		return ci.ID < cj.ID
	})
}

// SumValues totals the deadwood points of the given cards.
func SumValues(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

// CardIDs returns the IDs of the given cards in order.
func CardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// FilterValid drops malformed cards (missing ID, bad suit or rank).
func FilterValid(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// SplitJokers partitions cards into jokers and naturals, preserving order.
func SplitJokers(cards []Card) (jokers, naturals []Card) {
	for _, c := range cards {
		if c.IsJoker() {
			jokers = append(jokers, c)
		} else {
			naturals = append(naturals, c)
		}
	}
	return jokers, naturals
}
