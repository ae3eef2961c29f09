package domain

import "fmt"

// Suit identifies one of the four French suits.
type Suit string

const (
	SuitSpades   Suit = "S"
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
)

// Suits lists all suits in deterministic deal order.
var Suits = []Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Rank is a card rank. Ace is fixed low: 1 (Ace) .. 13 (King).
// Printed jokers carry rank 0.
type Rank int

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// JokerType tags how a card may substitute in melds.
type JokerType int

const (
	// JokerNone marks an ordinary card.
	JokerNone JokerType = iota
	// JokerPrinted marks a dedicated joker card.
	JokerPrinted
	// JokerWild marks a card whose rank matched the round's cut card.
	JokerWild
)

// Card is a single physical card instance. Two cards may share suit and
// rank across decks but never share ID. Cards are immutable after deal
// time; containers move them by value and track them by ID.
type Card struct {
	ID    string    `json:"id"`
	Suit  Suit      `json:"suit"`
	Rank  Rank      `json:"rank"`
	Joker JokerType `json:"joker"`
}

// IsJoker reports whether the card substitutes as a joker (printed or wild).
func (c Card) IsJoker() bool {
	return c.Joker != JokerNone
}

// Value returns the card's deadwood points: face cards and tens count 10,
// the ace counts 1, numeric cards their face value, and any joker 0.
func (c Card) Value() int {
	if c.IsJoker() {
		return 0
	}
	if c.Rank >= 10 {
		return 10
	}
	return int(c.Rank)
}

var rankNames = map[Rank]string{
	RankAce: "A", 2: "2", 3: "3", 4: "4", 5: "5", 6: "6", 7: "7",
	8: "8", 9: "9", 10: "10", RankJack: "J", RankQueen: "Q", RankKing: "K",
}

func (c Card) String() string {
	if c.Joker == JokerPrinted {
		return "JOKER"
	}
	name, ok := rankNames[c.Rank]
	if !ok {
		name = fmt.Sprintf("?%d", c.Rank)
	}
	return name + string(c.Suit)
}

// Valid reports whether the card is well formed. Malformed cards are
// filtered defensively by callers rather than rejected with errors.
func (c Card) Valid() bool {
	if c.ID == "" {
		return false
	}
	if c.Joker == JokerPrinted {
		return true
	}
	switch c.Suit {
	case SuitSpades, SuitHearts, SuitDiamonds, SuitClubs:
	default:
		return false
	}
	return c.Rank >= RankAce && c.Rank <= RankKing
}
