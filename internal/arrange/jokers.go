package arrange

import (
	"sort"

	"rummy/internal/domain"
)

// applyJokers spends jokers on 3-card completions. While the sequence
// minimum is unmet, jokers go to sequence completion only — a set they
// complete would not count anyway. Once two sequences are secured, set
// completion is tried first, then sequence completion.
func applyJokers(melds []domain.Meld, pool, jokers []domain.Card, seqCount int) ([]domain.Meld, []domain.Card, []domain.Card) {
	for len(jokers) > 0 {
		formed := false

		if seqCount >= domain.MinSequences {
			if pair, ok := findSetPair(pool); ok {
				cards := append(pair, jokers[0])
				melds = append(melds, domain.Meld{Type: domain.MeldSet, Cards: cards})
				pool = domain.RemoveCards(pool, pair)
				jokers = jokers[1:]
				formed = true
			}
		}

		if !formed {
			if pair, ok := findSequencePair(pool); ok {
				cards := append(pair, jokers[0])
				melds = append(melds, domain.Meld{Type: domain.MeldSequence, Cards: cards})
				pool = domain.RemoveCards(pool, pair)
				jokers = jokers[1:]
				seqCount++
				formed = true
			}
		}

		// Last resort: two jokers around a lone card still make a
		// sequence, turning its full value into zero deadwood.
		if !formed && len(jokers) >= 2 && len(pool) > 0 {
			single := maxValueCard(pool)
			cards := []domain.Card{single, jokers[0], jokers[1]}
			melds = append(melds, domain.Meld{Type: domain.MeldSequence, Cards: cards})
			pool = domain.RemoveCards(pool, cards[:1])
			jokers = jokers[2:]
			seqCount++
			formed = true
		}

		if !formed {
			break
		}
	}
	return melds, pool, jokers
}

// findSequencePair returns two same-suit cards whose rank gap is 1
// (joker extends the run) or 2 (joker fills the missing middle rank).
func findSequencePair(pool []domain.Card) ([]domain.Card, bool) {
	bySuit := suitRankMap(pool)
	for _, suit := range domain.Suits {
		rankMap := bySuit[suit]
		if len(rankMap) < 2 {
			continue
		}
		ranks := sortedRanks(rankMap)
		for i := 1; i < len(ranks); i++ {
			gap := ranks[i] - ranks[i-1]
			if gap == 1 || gap == 2 {
				return []domain.Card{
					rankMap[domain.Rank(ranks[i-1])][0],
					rankMap[domain.Rank(ranks[i])][0],
				}, true
			}
		}
	}
	return nil, false
}

// findSetPair returns two same-rank cards of distinct suits.
func findSetPair(pool []domain.Card) ([]domain.Card, bool) {
	byRank := make(map[domain.Rank][]domain.Card)
	for _, c := range pool {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	// Highest rank first: completing an expensive pair saves more points.
	for r := domain.RankKing; r >= domain.RankAce; r-- {
		cards := byRank[r]
		if len(cards) < 2 {
			continue
		}
		for i := 1; i < len(cards); i++ {
			if cards[i].Suit != cards[0].Suit {
				return []domain.Card{cards[0], cards[i]}, true
			}
		}
	}
	return nil, false
}

func maxValueCard(pool []domain.Card) domain.Card {
	best := pool[0]
	for _, c := range pool[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return best
}

// attachJokers parks leftover jokers on existing melds so a winnable
// hand is never left with a stray joker as deadwood. Sets below four
// cards absorb first, then impure sequences, then surplus pure
// sequences (never the last one — demoting it would cost the pure
// requirement). Every attachment is revalidated through GetMeldType.
func attachJokers(melds []domain.Meld, jokers []domain.Card) ([]domain.Meld, []domain.Card) {
	if len(jokers) == 0 || len(melds) == 0 {
		return melds, jokers
	}

	pureCount := 0
	for _, m := range melds {
		if m.IsPure() {
			pureCount++
		}
	}

	remaining := append([]domain.Card{}, jokers...)
	for len(remaining) > 0 {
		idx := -1
		for pass := 0; pass < 3 && idx < 0; pass++ {
			for i, m := range melds {
				switch pass {
				case 0:
					if m.Type != domain.MeldSet {
						continue
					}
				case 1:
					if m.Type != domain.MeldSequence {
						continue
					}
				case 2:
					if !m.IsPure() || pureCount <= domain.MinPureSequences {
						continue
					}
				}
				candidate := append(append([]domain.Card{}, m.Cards...), remaining[0])
				if t := domain.GetMeldType(candidate); t != domain.MeldInvalid {
					if m.IsPure() {
						pureCount--
					}
					melds[i] = domain.Meld{Type: t, Cards: candidate}
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			break
		}
		remaining = remaining[1:]
	}
	return melds, remaining
}

// sortMeldsForOutput orders melds sequences-first, longest-first, for
// stable presentation.
func sortMeldsForOutput(melds []domain.Meld) {
	sort.SliceStable(melds, func(i, j int) bool {
		si, sj := melds[i].IsSequence(), melds[j].IsSequence()
		if si != sj {
			return si
		}
		return len(melds[i].Cards) > len(melds[j].Cards)
	})
}
