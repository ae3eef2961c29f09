package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

// NewDeck returns count decks' worth of cards in sorted order, two
// printed jokers per deck. IDs are unique across copies.
func NewDeck(count int) []Card {
	if count < 1 {
		count = 1
	}
	deck := make([]Card, 0, count*CardsPerDeck)
	for d := 0; d < count; d++ {
		for _, s := range Suits {
			for r := RankAce; r <= RankKing; r++ {
				deck = append(deck, Card{
					ID:   fmt.Sprintf("%s%d-%d", s, r, d),
					Suit: s,
					Rank: r,
				})
			}
		}
		for j := 0; j < PrintedJokersPerDeck; j++ {
			deck = append(deck, Card{
				ID:    fmt.Sprintf("PJ%d-%d", j, d),
				Joker: JokerPrinted,
			})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	if rng != nil {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	} else {
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// Piles holds the face-down stock and face-up discard pile for a round.
type Piles struct {
	Stock    []Card `json:"stock"`
	Discard  []Card `json:"discard"`
	CutCard  Card   `json:"cut_card"`
	WildRank Rank   `json:"wild_rank"`
}

var (
	ErrTooFewPlayers  = errors.New("need at least 2 players")
	ErrTooManyPlayers = errors.New("not enough cards for player count")
)

// DealRound shuffles, deals HandSize cards per player, cuts the wild
// joker and seeds the discard pile with one upturned card. Every card
// sharing the cut card's rank is tagged wild across all containers; if
// the cut card is a printed joker, aces play wild.
func DealRound(rng *rand.Rand, players, decks int) ([][]Card, *Piles, error) {
	if players < 2 {
		return nil, nil, ErrTooFewPlayers
	}
	deck := ShuffleDeck(NewDeck(decks), rng)
	// One card per hand slot, the cut card and the first discard.
	if len(deck) < players*HandSize+2 {
		return nil, nil, ErrTooManyPlayers
	}

	hands := make([][]Card, players)
	idx := 0
	for p := 0; p < players; p++ {
		hands[p] = append([]Card{}, deck[idx:idx+HandSize]...)
		idx += HandSize
	}

	cut := deck[idx]
	idx++
	wildRank := RankAce
	if cut.Joker == JokerNone {
		wildRank = cut.Rank
	}

	piles := &Piles{
		Stock:    append([]Card{}, deck[idx:]...),
		CutCard:  cut,
		WildRank: wildRank,
	}

	for p := range hands {
		tagWild(hands[p], wildRank)
	}
	tagWild(piles.Stock, wildRank)

	// Upturn the first stock card to open the discard pile.
	first, _ := piles.DrawFromStock()
	piles.DiscardCard(first)

	return hands, piles, nil
}

func tagWild(cards []Card, wildRank Rank) {
	for i := range cards {
		if cards[i].Joker == JokerNone && cards[i].Rank == wildRank {
			cards[i].Joker = JokerWild
		}
	}
}

// DrawFromStock removes and returns the top stock card.
func (p *Piles) DrawFromStock() (Card, bool) {
	if len(p.Stock) == 0 {
		return Card{}, false
	}
	c := p.Stock[len(p.Stock)-1]
	p.Stock = p.Stock[:len(p.Stock)-1]
	return c, true
}

// DrawFromDiscard removes and returns the top discard.
func (p *Piles) DrawFromDiscard() (Card, bool) {
	if len(p.Discard) == 0 {
		return Card{}, false
	}
	c := p.Discard[len(p.Discard)-1]
	p.Discard = p.Discard[:len(p.Discard)-1]
	return c, true
}

// DiscardCard places a card face up on the discard pile.
func (p *Piles) DiscardCard(c Card) {
	p.Discard = append(p.Discard, c)
}

// TopDiscard returns the current top discard without removing it.
func (p *Piles) TopDiscard() (Card, bool) {
	if len(p.Discard) == 0 {
		return Card{}, false
	}
	return p.Discard[len(p.Discard)-1], true
}

// ReplenishStock recycles the discard pile into a fresh shuffled stock
// when the stock runs dry, leaving the top discard in place.
func (p *Piles) ReplenishStock(rng *rand.Rand) {
	if len(p.Stock) > 0 || len(p.Discard) < 2 {
		return
	}
	top := p.Discard[len(p.Discard)-1]
	p.Stock = ShuffleDeck(p.Discard[:len(p.Discard)-1], rng)
	p.Discard = []Card{top}
}
