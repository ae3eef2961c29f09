package bot

import (
	"rummy/internal/arrange"
	botinternal "rummy/internal/bot/internal"
	"rummy/internal/domain"
)

// EasyBot plays a casual game: it takes the discard whenever it looks
// at all useful, sheds its biggest loose card without searching, and
// never drops.
type EasyBot struct{}

func (b *EasyBot) Decide(ctx Context) (Decision, error) {
	switch ctx.Phase {
	case PhaseDraw:
		return b.decideDraw(ctx), nil
	case PhaseDiscard:
		return b.decideDiscard(ctx), nil
	default:
		return Decision{}, errUnknownPhase(ctx.Phase)
	}
}

func (b *EasyBot) decideDraw(ctx Context) Decision {
	d := Decision{Action: ActionDraw, Source: SourceDeck, ThinkingTime: thinkingTime(easyTuning)}
	if ctx.DiscardTop != nil && botinternal.PickupGain(ctx.Hand, *ctx.DiscardTop) >= easyTuning.PickupGain {
		d.Source = SourceDiscard
	}
	return d
}

func (b *EasyBot) decideDiscard(ctx Context) Decision {
	shed := botinternal.GreedyDiscard(ctx.Hand)
	return finishTurn(ctx.Hand, shed, easyTuning)
}

// finishTurn sheds the chosen card and upgrades the move to a declare
// when the remaining 13 cards form a legal show.
func finishTurn(hand []domain.Card, shed domain.Card, t Tuning) Decision {
	rest := domain.RemoveCards(hand, []domain.Card{shed})
	a := arrange.AutoArrange(rest)
	d := Decision{
		Action:       ActionDiscard,
		Card:         &shed,
		ThinkingTime: thinkingTime(t),
	}
	if a.CanDeclare {
		d.Action = ActionDeclare
		d.Melds = a.Melds
	}
	return d
}
