package bot

import (
	"rummy/internal/arrange"
	botinternal "rummy/internal/bot/internal"
)

// MediumBot searches its discards, demands a real gain before touching
// the open pile, and takes the cheap first-turn drop when dealt a dead
// hand.
type MediumBot struct{}

func (b *MediumBot) Decide(ctx Context) (Decision, error) {
	switch ctx.Phase {
	case PhaseDraw:
		return b.decideDraw(ctx), nil
	case PhaseDiscard:
		return b.decideDiscard(ctx), nil
	default:
		return Decision{}, errUnknownPhase(ctx.Phase)
	}
}

func (b *MediumBot) decideDraw(ctx Context) Decision {
	if ctx.FirstTurn {
		a := arrange.AutoArrange(ctx.Hand)
		if !a.HasPureSequence && a.DeadwoodPoints >= mediumTuning.FirstDropFloor {
			return Decision{Action: ActionDrop, ThinkingTime: thinkingTime(mediumTuning)}
		}
	}
	d := Decision{Action: ActionDraw, Source: SourceDeck, ThinkingTime: thinkingTime(mediumTuning)}
	if ctx.DiscardTop != nil && botinternal.PickupGain(ctx.Hand, *ctx.DiscardTop) >= mediumTuning.PickupGain {
		d.Source = SourceDiscard
	}
	return d
}

func (b *MediumBot) decideDiscard(ctx Context) Decision {
	shed, _ := botinternal.BestDiscard(ctx.Hand)
	return finishTurn(ctx.Hand, shed, mediumTuning)
}
