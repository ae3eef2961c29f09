package domain

import "sort"

// MeldType classifies a group of cards.
type MeldType int

const (
	MeldInvalid MeldType = iota
	MeldPureSequence
	MeldSequence
	MeldSet
)

func (t MeldType) String() string {
	switch t {
	case MeldPureSequence:
		return "pure-sequence"
	case MeldSequence:
		return "sequence"
	case MeldSet:
		return "set"
	default:
		return "invalid"
	}
}

// Meld is a classified group of cards. Melds are short-lived computed
// values derived from a hand snapshot, never persisted independently.
type Meld struct {
	Type  MeldType `json:"type"`
	Cards []Card   `json:"cards"`
}

// IsPure reports whether the meld is a joker-free sequence.
func (m Meld) IsPure() bool {
	return m.Type == MeldPureSequence
}

// IsSequence reports whether the meld counts toward the sequence minimum.
func (m Meld) IsSequence() bool {
	return m.Type == MeldPureSequence || m.Type == MeldSequence
}

// NewMeld classifies the given cards and wraps them in a Meld.
func NewMeld(cards []Card) Meld {
	return Meld{Type: GetMeldType(cards), Cards: cards}
}

// ValidateMeld reports whether the cards form any legal meld. Invalid
// input never panics; callers treat the cards as deadwood.
func ValidateMeld(cards []Card) bool {
	return GetMeldType(cards) != MeldInvalid
}

// GetMeldType classifies a group of cards as a pure sequence, sequence,
// set, or invalid. A group readable as both a sequence and a set (one
// natural card plus jokers) classifies as a sequence.
func GetMeldType(cards []Card) MeldType {
	if len(cards) < MinMeldSize {
		return MeldInvalid
	}
	jokers, naturals := SplitJokers(cards)
	for _, c := range naturals {
		if !c.Valid() {
			return MeldInvalid
		}
	}

	if isSequence(naturals, len(jokers)) {
		if len(jokers) == 0 {
			return MeldPureSequence
		}
		return MeldSequence
	}
	if isSet(naturals, len(cards)) {
		return MeldSet
	}
	return MeldInvalid
}

// isSequence reports whether naturals plus the given joker count can be
// ordered into one consecutive same-suit run. Jokers fill interior gaps
// first; leftovers extend either end. Ace is low only: runs never wrap
// past the King, so K-A-2 and Q-K-A both fail the consecutive check.
func isSequence(naturals []Card, jokerCount int) bool {
	if len(naturals) == 0 {
		// All jokers: plays as an open run.
		return jokerCount >= MinMeldSize
	}
	suit := naturals[0].Suit
	ranks := make([]int, 0, len(naturals))
	seen := make(map[Rank]bool, len(naturals))
	for _, c := range naturals {
		if c.Suit != suit {
			return false
		}
		if seen[c.Rank] {
			return false
		}
		seen[c.Rank] = true
		ranks = append(ranks, int(c.Rank))
	}
	sort.Ints(ranks)

	span := ranks[len(ranks)-1] - ranks[0] + 1
	gaps := span - len(ranks)
	if gaps > jokerCount {
		return false
	}
	// Remaining jokers extend the run; it must still fit inside A..K.
	extras := jokerCount - gaps
	room := (ranks[0] - int(RankAce)) + (int(RankKing) - ranks[len(ranks)-1])
	return extras <= room
}

// isSet reports whether naturals form a 3-4 card same-rank set with
// distinct suits, with jokers covering the remaining slots.
func isSet(naturals []Card, total int) bool {
	if total > MaxSetSize || len(naturals) == 0 {
		return false
	}
	rank := naturals[0].Rank
	suits := make(map[Suit]bool, len(naturals))
	for _, c := range naturals {
		if c.Rank != rank {
			return false
		}
		if suits[c.Suit] {
			return false
		}
		suits[c.Suit] = true
	}
	return true
}
