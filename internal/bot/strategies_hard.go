package bot

import (
	"rummy/internal/arrange"
	botinternal "rummy/internal/bot/internal"
	"rummy/internal/domain"
	"rummy/internal/score"
)

// HardBot layers card counting on top of the medium search: it tracks
// every card it has seen, sheds the discard opponents can use least,
// and weighs drops against the pool limit. Drop math assumes the
// conventional penalty schedule.
type HardBot struct{}

func (b *HardBot) Decide(ctx Context) (Decision, error) {
	switch ctx.Phase {
	case PhaseDraw:
		return b.decideDraw(ctx), nil
	case PhaseDiscard:
		return b.decideDiscard(ctx), nil
	default:
		return Decision{}, errUnknownPhase(ctx.Phase)
	}
}

func (b *HardBot) decideDraw(ctx Context) Decision {
	a := arrange.AutoArrange(ctx.Hand)
	if b.shouldDrop(ctx, a) {
		return Decision{Action: ActionDrop, ThinkingTime: thinkingTime(hardTuning)}
	}
	d := Decision{Action: ActionDraw, Source: SourceDeck, ThinkingTime: thinkingTime(hardTuning)}
	if ctx.DiscardTop != nil && botinternal.PickupGain(ctx.Hand, *ctx.DiscardTop) >= hardTuning.PickupGain {
		d.Source = SourceDiscard
	}
	return d
}

func (b *HardBot) shouldDrop(ctx Context, a arrange.Analysis) bool {
	if a.HasPureSequence {
		return false
	}
	if ctx.FirstTurn {
		return a.DeadwoodPoints >= hardTuning.FirstDropFloor
	}
	// A middle drop is only worth taking under pool pressure: losing the
	// round outright would eliminate the bot, dropping would not.
	if ctx.PoolLimit <= 0 {
		return false
	}
	pen := score.DefaultPenalties()
	if a.DeadwoodPoints < pen.MaxDeadwood-hardTuning.PoolPressureMargin {
		return false
	}
	loss := a.DeadwoodPoints
	if loss > pen.MaxDeadwood {
		loss = pen.MaxDeadwood
	}
	return ctx.CumulativeScore+loss >= ctx.PoolLimit &&
		ctx.CumulativeScore+pen.MiddleDrop < ctx.PoolLimit
}

func (b *HardBot) decideDiscard(ctx Context) Decision {
	shed := b.safestDiscard(ctx)
	return finishTurn(ctx.Hand, shed, hardTuning)
}

// safestDiscard searches all non-joker discards like BestDiscard, but
// breaks deadwood-point ties toward the card with the fewest unseen
// neighbors, the card opponents are least able to meld around.
func (b *HardBot) safestDiscard(ctx Context) domain.Card {
	tracker := botinternal.NewTracker(ctx.Decks)
	tracker.Observe(ctx.Hand...)
	tracker.Observe(ctx.DiscardHistory...)

	bestIdx := -1
	bestPoints, bestOuts := 0, 0
	for i, c := range ctx.Hand {
		if c.IsJoker() {
			continue
		}
		rest := withoutCard(ctx.Hand, i)
		points := arrange.AutoArrange(rest).DeadwoodPoints
		outs := tracker.UnseenNeighbors(c)
		if bestIdx < 0 || points < bestPoints ||
			(points == bestPoints && outs < bestOuts) ||
			(points == bestPoints && outs == bestOuts && c.Value() > ctx.Hand[bestIdx].Value()) {
			bestIdx, bestPoints, bestOuts = i, points, outs
		}
	}
	if bestIdx < 0 {
		shed, _ := botinternal.BestDiscard(ctx.Hand)
		return shed
	}
	return ctx.Hand[bestIdx]
}

func withoutCard(hand []domain.Card, i int) []domain.Card {
	out := make([]domain.Card, 0, len(hand)-1)
	out = append(out, hand[:i]...)
	out = append(out, hand[i+1:]...)
	return out
}
