package arrange

import (
	"fmt"
	"testing"

	"rummy/internal/domain"
)

var seq int

func tc(s domain.Suit, r domain.Rank) domain.Card {
	seq++
	return domain.Card{ID: fmt.Sprintf("t%s%d-%d", s, r, seq), Suit: s, Rank: r}
}

func pj() domain.Card {
	seq++
	return domain.Card{ID: fmt.Sprintf("tpj-%d", seq), Joker: domain.JokerPrinted}
}

func TestAutoArrangeWinningHand(t *testing.T) {
	// Two pure runs, a set of twos, a pair of kings and two jokers. The
	// jokers complete the kings and extend the twos, leaving nothing.
	hand := []domain.Card{
		tc(domain.SuitSpades, 3), tc(domain.SuitSpades, 4), tc(domain.SuitSpades, 5),
		tc(domain.SuitHearts, 7), tc(domain.SuitHearts, 8), tc(domain.SuitHearts, 9),
		tc(domain.SuitClubs, 2), tc(domain.SuitDiamonds, 2), tc(domain.SuitSpades, 2),
		tc(domain.SuitClubs, domain.RankKing), tc(domain.SuitDiamonds, domain.RankKing),
		pj(), pj(),
	}

	a := AutoArrange(hand)
	if !a.CanDeclare {
		t.Fatalf("expected a declarable hand, got deadwood %v", domain.CardIDs(a.Deadwood))
	}
	if a.DeadwoodPoints != 0 {
		t.Errorf("expected 0 deadwood points, got %d", a.DeadwoodPoints)
	}
	if !a.HasPureSequence {
		t.Error("expected a pure sequence")
	}
	if a.SequenceCount != 2 {
		t.Errorf("expected 2 sequences, got %d", a.SequenceCount)
	}
	if len(a.Deadwood) != 0 {
		t.Errorf("expected no deadwood cards, got %d", len(a.Deadwood))
	}
}

func TestAutoArrangeNoMelds(t *testing.T) {
	hand := []domain.Card{
		tc(domain.SuitSpades, 2), tc(domain.SuitSpades, 5), tc(domain.SuitSpades, 9),
		tc(domain.SuitHearts, 3), tc(domain.SuitHearts, 6), tc(domain.SuitHearts, rk(11)),
		tc(domain.SuitClubs, 4), tc(domain.SuitClubs, 8), tc(domain.SuitClubs, rk(13)),
		tc(domain.SuitDiamonds, 2), tc(domain.SuitDiamonds, 7), tc(domain.SuitDiamonds, rk(12)),
		tc(domain.SuitSpades, rk(12)),
	}

	a := AutoArrange(hand)
	if a.CanDeclare {
		t.Fatal("scattered hand must not declare")
	}
	if len(a.Melds) != 0 {
		t.Errorf("expected no melds, got %d", len(a.Melds))
	}
	want := domain.SumValues(hand)
	if a.DeadwoodPoints != want {
		t.Errorf("expected %d deadwood points, got %d", want, a.DeadwoodPoints)
	}
}

func rk(n int) domain.Rank { return domain.Rank(n) }

func TestAutoArrangeSplitsLongRun(t *testing.T) {
	// A single six-card run must be split into two sequences so the
	// 2-sequence minimum is met without a second suit run.
	hand := []domain.Card{
		tc(domain.SuitSpades, 3), tc(domain.SuitSpades, 4), tc(domain.SuitSpades, 5),
		tc(domain.SuitSpades, 6), tc(domain.SuitSpades, 7), tc(domain.SuitSpades, 8),
		tc(domain.SuitHearts, 2), tc(domain.SuitHearts, 9), tc(domain.SuitClubs, 5),
		tc(domain.SuitDiamonds, rk(11)), tc(domain.SuitClubs, rk(13)),
		tc(domain.SuitDiamonds, 4), tc(domain.SuitHearts, rk(12)),
	}

	a := AutoArrange(hand)
	if a.SequenceCount < 2 {
		t.Fatalf("expected the run split into 2 sequences, got %d", a.SequenceCount)
	}
	if !a.HasPureSequence {
		t.Error("split runs stay pure")
	}
	if len(a.Deadwood) != 7 {
		t.Errorf("expected 7 deadwood cards, got %d", len(a.Deadwood))
	}
}

func TestAutoArrangeSetNeedsSequences(t *testing.T) {
	// One pure run plus a natural set: the set cannot stand alone, so
	// its cards count as deadwood.
	set := []domain.Card{
		tc(domain.SuitSpades, 9), tc(domain.SuitHearts, 9), tc(domain.SuitClubs, 9),
	}
	hand := []domain.Card{
		tc(domain.SuitSpades, 3), tc(domain.SuitSpades, 4), tc(domain.SuitSpades, 5),
	}
	hand = append(hand, set...)
	hand = append(hand,
		tc(domain.SuitHearts, 2), tc(domain.SuitDiamonds, 6), tc(domain.SuitClubs, rk(11)),
		tc(domain.SuitDiamonds, rk(13)), tc(domain.SuitHearts, 5), tc(domain.SuitClubs, 7),
		tc(domain.SuitDiamonds, 10),
	)

	a := AutoArrange(hand)
	if a.CanDeclare {
		t.Fatal("one sequence cannot declare")
	}
	if a.SequenceCount != 1 {
		t.Fatalf("expected 1 sequence, got %d", a.SequenceCount)
	}
	for _, m := range a.Melds {
		if m.Type == domain.MeldSet {
			t.Error("set must not be melded while the sequence minimum is unmet")
		}
	}
	if a.DeadwoodPoints != 9*3+2+6+10+10+5+7+10 {
		t.Errorf("unexpected deadwood points %d", a.DeadwoodPoints)
	}
}

func TestAutoArrangeJokerSecondSequence(t *testing.T) {
	// A joker bridges 7H-9H into the second sequence.
	hand := []domain.Card{
		tc(domain.SuitSpades, 3), tc(domain.SuitSpades, 4), tc(domain.SuitSpades, 5),
		tc(domain.SuitHearts, 7), tc(domain.SuitHearts, 9), pj(),
		tc(domain.SuitClubs, 2), tc(domain.SuitDiamonds, 6), tc(domain.SuitClubs, rk(11)),
		tc(domain.SuitDiamonds, rk(13)), tc(domain.SuitHearts, 2), tc(domain.SuitClubs, 8),
		tc(domain.SuitDiamonds, 10),
	}

	a := AutoArrange(hand)
	if a.SequenceCount != 2 {
		t.Fatalf("expected 2 sequences, got %d", a.SequenceCount)
	}
	if !a.HasPureSequence {
		t.Error("expected the spade run to stay pure")
	}
}

func TestAutoArrangePreservesCards(t *testing.T) {
	hand := []domain.Card{
		tc(domain.SuitSpades, 3), tc(domain.SuitSpades, 4), tc(domain.SuitSpades, 5),
		tc(domain.SuitHearts, 7), tc(domain.SuitHearts, 8), tc(domain.SuitHearts, 9),
		tc(domain.SuitClubs, 2), tc(domain.SuitDiamonds, 2), tc(domain.SuitSpades, 2),
		tc(domain.SuitClubs, domain.RankKing), tc(domain.SuitDiamonds, domain.RankKing),
		pj(), pj(),
	}

	a := AutoArrange(hand)

	counts := make(map[string]int, len(hand))
	for _, m := range a.Melds {
		for _, c := range m.Cards {
			counts[c.ID]++
		}
	}
	for _, c := range a.Deadwood {
		counts[c.ID]++
	}
	if len(counts) != len(hand) {
		t.Fatalf("expected %d distinct cards out, got %d", len(hand), len(counts))
	}
	for _, c := range hand {
		if counts[c.ID] != 1 {
			t.Errorf("card %s appears %d times", c.ID, counts[c.ID])
		}
	}
}

func TestAutoArrangeEmptyAndMalformed(t *testing.T) {
	a := AutoArrange(nil)
	if a.DeadwoodPoints != 0 || len(a.Melds) != 0 || a.CanDeclare {
		t.Errorf("empty hand should produce an empty analysis: %+v", a)
	}

	a = AutoArrange([]domain.Card{{Suit: "X", Rank: 99}})
	if len(a.Deadwood) != 0 {
		t.Errorf("malformed cards must be filtered, got %v", a.Deadwood)
	}
}
