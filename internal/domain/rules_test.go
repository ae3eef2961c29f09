package domain

import (
	"fmt"
	"testing"
)

var testCardSeq int

func tc(s Suit, r Rank) Card {
	testCardSeq++
	return Card{ID: fmt.Sprintf("t%s%d-%d", s, r, testCardSeq), Suit: s, Rank: r}
}

func pj() Card {
	testCardSeq++
	return Card{ID: fmt.Sprintf("tpj-%d", testCardSeq), Joker: JokerPrinted}
}

func wild(s Suit, r Rank) Card {
	c := tc(s, r)
	c.Joker = JokerWild
	return c
}

func TestGetMeldType(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected MeldType
	}{
		{
			name:     "Pure sequence",
			cards:    []Card{tc(SuitSpades, 3), tc(SuitSpades, 4), tc(SuitSpades, 5)},
			expected: MeldPureSequence,
		},
		{
			name:     "Pure sequence unsorted input",
			cards:    []Card{tc(SuitHearts, 9), tc(SuitHearts, 7), tc(SuitHearts, 8)},
			expected: MeldPureSequence,
		},
		{
			name:     "Ace low sequence A-2-3",
			cards:    []Card{tc(SuitClubs, RankAce), tc(SuitClubs, 2), tc(SuitClubs, 3)},
			expected: MeldPureSequence,
		},
		{
			name:     "Q-K-A does not wrap",
			cards:    []Card{tc(SuitClubs, RankQueen), tc(SuitClubs, RankKing), tc(SuitClubs, RankAce)},
			expected: MeldInvalid,
		},
		{
			name:     "K-A-2 does not wrap",
			cards:    []Card{tc(SuitDiamonds, RankKing), tc(SuitDiamonds, RankAce), tc(SuitDiamonds, 2)},
			expected: MeldInvalid,
		},
		{
			name:     "Mixed suit run",
			cards:    []Card{tc(SuitSpades, 4), tc(SuitHearts, 5), tc(SuitSpades, 6)},
			expected: MeldInvalid,
		},
		{
			name:     "Duplicate rank in run",
			cards:    []Card{tc(SuitSpades, 4), tc(SuitSpades, 4), tc(SuitSpades, 5)},
			expected: MeldInvalid,
		},
		{
			name:     "Joker fills interior gap",
			cards:    []Card{tc(SuitSpades, 4), pj(), tc(SuitSpades, 6)},
			expected: MeldSequence,
		},
		{
			name:     "Wild joker fills interior gap",
			cards:    []Card{tc(SuitHearts, 10), wild(SuitClubs, 5), tc(SuitHearts, RankQueen)},
			expected: MeldSequence,
		},
		{
			name:     "Joker extends run end",
			cards:    []Card{tc(SuitSpades, RankQueen), tc(SuitSpades, RankKing), pj()},
			expected: MeldSequence,
		},
		{
			name:     "Joker blocked above extends below",
			cards:    []Card{tc(SuitSpades, RankJack), tc(SuitSpades, RankQueen), tc(SuitSpades, RankKing), pj()},
			expected: MeldSequence,
		},
		{
			name:     "One natural plus jokers reads as sequence",
			cards:    []Card{tc(SuitHearts, 7), pj(), pj()},
			expected: MeldSequence,
		},
		{
			name:     "All jokers",
			cards:    []Card{pj(), pj(), pj()},
			expected: MeldSequence,
		},
		{
			name:     "Set of three",
			cards:    []Card{tc(SuitSpades, 9), tc(SuitHearts, 9), tc(SuitClubs, 9)},
			expected: MeldSet,
		},
		{
			name:     "Set of four",
			cards:    []Card{tc(SuitSpades, 9), tc(SuitHearts, 9), tc(SuitClubs, 9), tc(SuitDiamonds, 9)},
			expected: MeldSet,
		},
		{
			name:     "Set with joker",
			cards:    []Card{tc(SuitSpades, RankKing), tc(SuitHearts, RankKing), pj()},
			expected: MeldSet,
		},
		{
			name:     "Set rejects duplicate suit",
			cards:    []Card{tc(SuitSpades, 9), tc(SuitSpades, 9), tc(SuitClubs, 9)},
			expected: MeldInvalid,
		},
		{
			name:     "Set rejects five cards",
			cards:    []Card{tc(SuitSpades, 9), tc(SuitHearts, 9), tc(SuitClubs, 9), tc(SuitDiamonds, 9), pj()},
			expected: MeldInvalid,
		},
		{
			name:     "Too few cards",
			cards:    []Card{tc(SuitSpades, 9), tc(SuitHearts, 9)},
			expected: MeldInvalid,
		},
		{
			name:     "Empty group",
			cards:    nil,
			expected: MeldInvalid,
		},
		{
			name:     "Malformed card poisons the group",
			cards:    []Card{tc(SuitSpades, 3), tc(SuitSpades, 4), {ID: "bad", Suit: "X", Rank: 99}},
			expected: MeldInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetMeldType(tt.cards)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected int
	}{
		{"Ace", tc(SuitSpades, RankAce), 1},
		{"Seven", tc(SuitHearts, 7), 7},
		{"Ten", tc(SuitClubs, 10), 10},
		{"King", tc(SuitDiamonds, RankKing), 10},
		{"Printed joker", pj(), 0},
		{"Wild joker keeps no value", wild(SuitSpades, 8), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Value(); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestValidateMeld(t *testing.T) {
	if !ValidateMeld([]Card{tc(SuitSpades, 3), tc(SuitSpades, 4), tc(SuitSpades, 5)}) {
		t.Error("pure run should validate")
	}
	if ValidateMeld([]Card{tc(SuitSpades, 3), tc(SuitHearts, 8), tc(SuitClubs, RankJack)}) {
		t.Error("loose cards should not validate")
	}
}
