package arrange

import (
	"sort"

	"rummy/internal/domain"
)

// packRemainder greedily packs the pool around the secured melds:
// pure runs first, then sets (only once the sequence minimum is met),
// then the joker passes. It returns the meld list, leftover naturals
// and unused jokers.
//
// The run picker is asymmetric: while fewer than two sequences are
// secured it prefers more, shorter runs and splits any run of length 6+
// so a single long run can satisfy the 2-sequence minimum alone. Once
// two sequences are secured it flips to longest-first to minimize
// leftover cards.
func packRemainder(pool, jokers []domain.Card, secured []domain.Meld) ([]domain.Meld, []domain.Card, []domain.Card) {
	melds := append([]domain.Meld{}, secured...)
	pool = append([]domain.Card{}, pool...)
	jokers = append([]domain.Card{}, jokers...)

	seqCount := 0
	for _, m := range melds {
		if m.IsSequence() {
			seqCount++
		}
	}

	for {
		runs := maximalRuns(pool)
		if len(runs) == 0 {
			break
		}
		var pick []domain.Card
		if seqCount < domain.MinSequences {
			sort.SliceStable(runs, func(i, j int) bool { return len(runs[i]) < len(runs[j]) })
			pick = runs[0]
			if len(pick) >= 2*domain.MinMeldSize {
				pick = pick[:domain.MinMeldSize]
			}
		} else {
			sort.SliceStable(runs, func(i, j int) bool { return len(runs[i]) > len(runs[j]) })
			pick = runs[0]
		}
		melds = append(melds, domain.Meld{Type: domain.MeldPureSequence, Cards: pick})
		seqCount++
		pool = domain.RemoveCards(pool, pick)
	}

	if seqCount >= domain.MinSequences {
		var sets []domain.Meld
		sets, pool = extractSets(pool)
		melds = append(melds, sets...)
	}

	melds, pool, jokers = applyJokers(melds, pool, jokers, seqCount)
	melds, jokers = attachJokers(melds, jokers)

	return melds, pool, jokers
}

// extractSets removes natural 3-4 card sets (same rank, distinct suits)
// from the pool.
func extractSets(pool []domain.Card) ([]domain.Meld, []domain.Card) {
	var sets []domain.Meld
	for {
		byRank := make(map[domain.Rank][]domain.Card)
		for _, c := range pool {
			byRank[c.Rank] = append(byRank[c.Rank], c)
		}
		formed := false
		for r := domain.RankAce; r <= domain.RankKing; r++ {
			cards := byRank[r]
			if len(cards) < domain.MinMeldSize {
				continue
			}
			distinct := make([]domain.Card, 0, domain.MaxSetSize)
			seen := make(map[domain.Suit]bool, domain.MaxSetSize)
			for _, c := range cards {
				if seen[c.Suit] {
					continue
				}
				seen[c.Suit] = true
				distinct = append(distinct, c)
				if len(distinct) == domain.MaxSetSize {
					break
				}
			}
			if len(distinct) < domain.MinMeldSize {
				continue
			}
			sets = append(sets, domain.Meld{Type: domain.MeldSet, Cards: distinct})
			pool = domain.RemoveCards(pool, distinct)
			formed = true
			break
		}
		if !formed {
			break
		}
	}
	return sets, pool
}
