// Package score converts round outcomes into point deltas and drives
// variant-specific game progression: pool elimination, fixed deal
// counts, and open-ended points play.
package score

import (
	"sort"

	"rummy/internal/arrange"
	"rummy/internal/domain"
)

// Variant selects the game-ending rule set.
type Variant int

const (
	// VariantPoints has no natural end; the caller decides when to stop.
	VariantPoints Variant = iota
	// VariantPool eliminates players whose total reaches the pool limit.
	VariantPool
	// VariantDeals ends after a fixed number of rounds, lowest total wins.
	VariantDeals
)

func (v Variant) String() string {
	switch v {
	case VariantPool:
		return "pool"
	case VariantDeals:
		return "deals"
	default:
		return "points"
	}
}

// Outcome is a player's terminal state for one round.
type Outcome int

const (
	// OutcomeActive marks a player who played to the end and lost.
	OutcomeActive Outcome = iota
	// OutcomeWon marks the player with the valid declaration.
	OutcomeWon
	// OutcomeFirstDrop marks a drop on the player's first turn.
	OutcomeFirstDrop
	// OutcomeMiddleDrop marks a drop after the first turn.
	OutcomeMiddleDrop
	// OutcomeInvalidDeclare marks a declaring player whose show failed.
	OutcomeInvalidDeclare
)

// Penalties holds the variant-configured flat penalties and the
// full-hand deadwood cap. All values are plain parameters; the engine
// reads no configuration itself.
type Penalties struct {
	FirstDrop      int `json:"first_drop"`
	MiddleDrop     int `json:"middle_drop"`
	InvalidDeclare int `json:"invalid_declare"`
	MaxDeadwood    int `json:"max_deadwood"`
}

// DefaultPenalties returns the conventional 20/40/80 penalty schedule.
func DefaultPenalties() Penalties {
	return Penalties{FirstDrop: 20, MiddleDrop: 40, InvalidDeclare: 80, MaxDeadwood: 80}
}

// CalculateRoundScores converts one finished round into per-player
// deltas. The winner scores 0; droppers and invalid declarers score
// their flat penalties; every other player scores their own hand's
// deadwood (via the arranger) capped at MaxDeadwood.
func CalculateRoundScores(hands map[string][]domain.Card, outcomes map[string]Outcome, pen Penalties) map[string]int {
	deltas := make(map[string]int, len(outcomes))
	for id, outcome := range outcomes {
		switch outcome {
		case OutcomeWon:
			deltas[id] = 0
		case OutcomeFirstDrop:
			deltas[id] = pen.FirstDrop
		case OutcomeMiddleDrop:
			deltas[id] = pen.MiddleDrop
		case OutcomeInvalidDeclare:
			deltas[id] = pen.InvalidDeclare
		default:
			points := arrange.AutoArrange(hands[id]).DeadwoodPoints
			if pen.MaxDeadwood > 0 && points > pen.MaxDeadwood {
				points = pen.MaxDeadwood
			}
			deltas[id] = points
		}
	}
	return deltas
}

// UpdateCumulativeScores returns a fresh totals map with the round
// deltas applied. The input map is never mutated.
func UpdateCumulativeScores(totals, deltas map[string]int) map[string]int {
	updated := make(map[string]int, len(totals)+len(deltas))
	for id, t := range totals {
		updated[id] = t
	}
	for id, d := range deltas {
		updated[id] += d
	}
	return updated
}

// IsPlayerEliminated reports whether a cumulative total crosses the
// pool limit. Only the pool variant eliminates.
func IsPlayerEliminated(variant Variant, total, poolLimit int) bool {
	return variant == VariantPool && poolLimit > 0 && total >= poolLimit
}

// ShouldGameEnd reports whether the game is over: pool play ends when
// at most one active player remains, deals play after the configured
// round count, points play never by itself.
func ShouldGameEnd(variant Variant, activePlayers, roundsPlayed, totalDeals int) bool {
	switch variant {
	case VariantPool:
		return activePlayers <= 1
	case VariantDeals:
		return roundsPlayed >= totalDeals
	default:
		return false
	}
}

// DetermineGameWinner picks the surviving player with the lowest
// cumulative total; ties break on the smaller player id for
// deterministic output.
func DetermineGameWinner(totals map[string]int, eliminated map[string]bool) string {
	ids := make([]string, 0, len(totals))
	for id := range totals {
		if !eliminated[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	winner := ""
	for _, id := range ids {
		if winner == "" || totals[id] < totals[winner] {
			winner = id
		}
	}
	return winner
}
