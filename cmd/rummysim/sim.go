package main

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"rummy/internal/bot"
	"rummy/internal/domain"
	"rummy/internal/score"
)

// maxTurnsPerRound guards against degenerate rounds where no bot ever
// completes a hand.
const maxTurnsPerRound = 500

type gameResult struct {
	Totals       map[string]int
	Eliminated   map[string]bool
	Winner       string
	RoundsPlayed int
}

type seat struct {
	id        string
	hand      []domain.Card
	firstTurn bool
	inRound   bool
	outcome   score.Outcome
}

func runGame(cli CLI, variant score.Variant, difficulty bot.Difficulty, rng *rand.Rand, logger *log.Logger) (*gameResult, error) {
	brain, err := bot.NewBrain(difficulty)
	if err != nil {
		return nil, err
	}

	ids := make([]string, cli.Players)
	for i := range ids {
		ids[i] = fmt.Sprintf("bot-%d", i+1)
	}

	totals := make(map[string]int, len(ids))
	eliminated := make(map[string]bool, len(ids))
	for _, id := range ids {
		totals[id] = 0
	}

	poolLimit := 0
	if variant == score.VariantPool {
		poolLimit = cli.PoolLimit
	}

	roundsPlayed := 0
	for {
		active := make([]string, 0, len(ids))
		for _, id := range ids {
			if !eliminated[id] {
				active = append(active, id)
			}
		}
		if len(active) < 2 {
			break
		}

		outcomes, hands, err := playRound(brain, active, totals, poolLimit, cli.Decks, rng, logger)
		if err != nil {
			return nil, err
		}
		deltas := score.CalculateRoundScores(hands, outcomes, score.DefaultPenalties())
		totals = score.UpdateCumulativeScores(totals, deltas)
		roundsPlayed++

		activeCount := 0
		for _, id := range ids {
			if eliminated[id] {
				continue
			}
			if score.IsPlayerEliminated(variant, totals[id], poolLimit) {
				eliminated[id] = true
				logger.Info("Player eliminated", "player", id, "total", totals[id])
				continue
			}
			activeCount++
		}
		logger.Info("Round complete", "round", roundsPlayed, "deltas", deltas)

		if variant == score.VariantPoints {
			if roundsPlayed >= cli.Rounds {
				break
			}
			continue
		}
		if score.ShouldGameEnd(variant, activeCount, roundsPlayed, cli.Deals) {
			break
		}
	}

	return &gameResult{
		Totals:       totals,
		Eliminated:   eliminated,
		Winner:       score.DetermineGameWinner(totals, eliminated),
		RoundsPlayed: roundsPlayed,
	}, nil
}

// playRound deals one round and runs bot turns until someone wins, the
// table empties out, or the turn cap trips. It returns per-player
// outcomes and final hands for scoring.
func playRound(brain bot.Brain, ids []string, totals map[string]int, poolLimit, decks int, rng *rand.Rand, logger *log.Logger) (map[string]score.Outcome, map[string][]domain.Card, error) {
	dealt, piles, err := domain.DealRound(rng, len(ids), decks)
	if err != nil {
		return nil, nil, err
	}

	seats := make([]*seat, len(ids))
	for i, id := range ids {
		seats[i] = &seat{id: id, hand: dealt[i], firstTurn: true, inRound: true}
	}
	logger.Debug("Round dealt", "wildRank", piles.WildRank, "cut", piles.CutCard.String())

	turns := 0
	for turns < maxTurnsPerRound {
		remaining := roundPlayers(seats)
		if len(remaining) == 0 {
			break
		}
		if len(remaining) == 1 {
			// Everyone else dropped or misdeclared.
			remaining[0].outcome = score.OutcomeWon
			break
		}

		won := false
		for _, s := range seats {
			if !s.inRound {
				continue
			}
			turns++

			done, err := playTurn(brain, s, piles, totals[s.id], poolLimit, decks, rng, logger)
			if err != nil {
				return nil, nil, err
			}
			if done {
				won = true
				break
			}
			if len(roundPlayers(seats)) < 2 {
				break
			}
		}
		if won {
			break
		}
	}

	outcomes := make(map[string]score.Outcome, len(seats))
	hands := make(map[string][]domain.Card, len(seats))
	for _, s := range seats {
		outcomes[s.id] = s.outcome
		hands[s.id] = s.hand
	}
	return outcomes, hands, nil
}

// playTurn runs one full draw-then-discard turn for a seat. It returns
// true when the seat won the round with a valid declaration.
func playTurn(brain bot.Brain, s *seat, piles *domain.Piles, total, poolLimit, decks int, rng *rand.Rand, logger *log.Logger) (bool, error) {
	ctx := bot.Context{
		Hand:            s.hand,
		DiscardHistory:  append([]domain.Card{}, piles.Discard...),
		Phase:           bot.PhaseDraw,
		FirstTurn:       s.firstTurn,
		CumulativeScore: total,
		PoolLimit:       poolLimit,
		Decks:           decks,
	}
	if top, ok := piles.TopDiscard(); ok {
		ctx.DiscardTop = &top
	}

	decision, err := brain.Decide(ctx)
	if err != nil {
		return false, err
	}

	switch decision.Action {
	case bot.ActionDrop:
		if s.firstTurn {
			s.outcome = score.OutcomeFirstDrop
		} else {
			s.outcome = score.OutcomeMiddleDrop
		}
		s.inRound = false
		logger.Debug("Drop", "player", s.id, "first", s.firstTurn)
		return false, nil
	case bot.ActionDraw:
	default:
		return false, fmt.Errorf("unexpected draw-phase action %q from %s", decision.Action, s.id)
	}

	var drawn domain.Card
	var ok bool
	if decision.Source == bot.SourceDiscard {
		drawn, ok = piles.DrawFromDiscard()
	}
	if !ok {
		piles.ReplenishStock(rng)
		drawn, ok = piles.DrawFromStock()
	}
	if !ok {
		// Both piles are exhausted. The round ends with no winner.
		s.inRound = false
		return false, nil
	}
	s.hand = append(s.hand, drawn)
	s.firstTurn = false

	ctx.Hand = s.hand
	ctx.Phase = bot.PhaseDiscard
	ctx.FirstTurn = false
	decision, err = brain.Decide(ctx)
	if err != nil {
		return false, err
	}
	if decision.Card == nil {
		return false, fmt.Errorf("discard-phase decision from %s carries no card", s.id)
	}

	s.hand = domain.RemoveCards(s.hand, []domain.Card{*decision.Card})
	piles.DiscardCard(*decision.Card)

	switch decision.Action {
	case bot.ActionDiscard:
		logger.Debug("Discard", "player", s.id, "card", decision.Card.String())
		return false, nil
	case bot.ActionDeclare:
		groups := make([][]domain.Card, len(decision.Melds))
		for i, m := range decision.Melds {
			groups[i] = m.Cards
		}
		result := domain.ValidateDeclaration(groups, nil)
		if result.IsValid {
			s.outcome = score.OutcomeWon
			s.inRound = false
			logger.Info("Valid declaration", "player", s.id)
			return true, nil
		}
		s.outcome = score.OutcomeInvalidDeclare
		s.inRound = false
		logger.Info("Invalid declaration", "player", s.id, "violations", result.Violations)
		return false, nil
	default:
		return false, fmt.Errorf("unexpected discard-phase action %q from %s", decision.Action, s.id)
	}
}

func roundPlayers(seats []*seat) []*seat {
	in := make([]*seat, 0, len(seats))
	for _, s := range seats {
		if s.inRound {
			in = append(in, s)
		}
	}
	return in
}
