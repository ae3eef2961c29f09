package domain

const (
	// HandSize is the fixed declaration hand size.
	HandSize = 13
	// CardsPerDeck counts one deck including its two printed jokers.
	CardsPerDeck = 54
	// PrintedJokersPerDeck is the number of printed jokers per deck.
	PrintedJokersPerDeck = 2
	// MinSequences is the minimum sequence count for a valid declaration.
	MinSequences = 2
	// MinPureSequences is the minimum pure sequence count for a valid declaration.
	MinPureSequences = 1
	// MinMeldSize and MaxSetSize bound individual melds.
	MinMeldSize = 3
	MaxSetSize  = 4
)
