package internal

import "rummy/internal/domain"

// Tracker counts cards the bot has seen, per suit and rank, so it can
// estimate how many copies of a card remain unseen in a multi-deck
// stock. Jokers are tracked as a single bucket.
type Tracker struct {
	seen   map[domain.Suit]map[domain.Rank]int
	jokers int
	decks  int
}

// NewTracker starts a fresh count for a round played with the given
// number of decks.
func NewTracker(decks int) *Tracker {
	if decks < 1 {
		decks = 1
	}
	return &Tracker{
		seen:  make(map[domain.Suit]map[domain.Rank]int),
		decks: decks,
	}
}

// Observe records cards the bot has seen: its own hand, the discard
// history, the cut card.
func (t *Tracker) Observe(cards ...domain.Card) {
	for _, c := range cards {
		if c.Joker == domain.JokerPrinted {
			t.jokers++
			continue
		}
		byRank, ok := t.seen[c.Suit]
		if !ok {
			byRank = make(map[domain.Rank]int)
			t.seen[c.Suit] = byRank
		}
		byRank[c.Rank]++
	}
}

// Unseen estimates how many copies of suit+rank are still hidden from
// the bot. Never negative.
func (t *Tracker) Unseen(suit domain.Suit, rank domain.Rank) int {
	left := t.decks - t.seen[suit][rank]
	if left < 0 {
		return 0
	}
	return left
}

// UnseenNeighbors counts hidden cards adjacent to the given card in its
// suit, the cards that could extend it into a sequence.
func (t *Tracker) UnseenNeighbors(c domain.Card) int {
	if c.IsJoker() {
		return 0
	}
	n := 0
	if c.Rank > domain.RankAce {
		n += t.Unseen(c.Suit, c.Rank-1)
	}
	if c.Rank < domain.RankKing {
		n += t.Unseen(c.Suit, c.Rank+1)
	}
	return n
}
