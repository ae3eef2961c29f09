package arrange

import (
	"sort"

	"rummy/internal/domain"
)

// suitRankMap indexes a pool's natural cards by suit, then rank.
// Multi-deck duplicates pile up under the same rank; run construction
// takes the first copy and leaves the rest in the pool.
func suitRankMap(pool []domain.Card) map[domain.Suit]map[domain.Rank][]domain.Card {
	bySuit := make(map[domain.Suit]map[domain.Rank][]domain.Card)
	for _, c := range pool {
		if c.IsJoker() {
			continue
		}
		if bySuit[c.Suit] == nil {
			bySuit[c.Suit] = make(map[domain.Rank][]domain.Card)
		}
		bySuit[c.Suit][c.Rank] = append(bySuit[c.Suit][c.Rank], c)
	}
	return bySuit
}

func sortedRanks(m map[domain.Rank][]domain.Card) []int {
	ranks := make([]int, 0, len(m))
	for r := range m {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)
	return ranks
}

// consecutiveSegments returns [start,end) index pairs of maximal
// consecutive stretches within sorted ranks.
func consecutiveSegments(ranks []int) [][2]int {
	var segs [][2]int
	segStart := 0
	for i := 1; i <= len(ranks); i++ {
		if i < len(ranks) && ranks[i] == ranks[i-1]+1 {
			continue
		}
		segs = append(segs, [2]int{segStart, i})
		segStart = i
	}
	return segs
}

// enumeratePureSequences lists every pure sequence the naturals can
// form: for each maximal same-suit run of length >= 3, every sub-run of
// length 3 up to the full run. The exhaustive sub-run list lets the
// anchor search split a long run into two shorter sequences when that
// is what the 2-sequence minimum needs.
func enumeratePureSequences(naturals []domain.Card) [][]domain.Card {
	var out [][]domain.Card
	bySuit := suitRankMap(naturals)
	for _, suit := range domain.Suits {
		rankMap := bySuit[suit]
		if len(rankMap) < domain.MinMeldSize {
			continue
		}
		ranks := sortedRanks(rankMap)
		for _, seg := range consecutiveSegments(ranks) {
			segLen := seg[1] - seg[0]
			if segLen < domain.MinMeldSize {
				continue
			}
			for length := domain.MinMeldSize; length <= segLen; length++ {
				for start := seg[0]; start+length <= seg[1]; start++ {
					run := make([]domain.Card, 0, length)
					for k := 0; k < length; k++ {
						r := domain.Rank(ranks[start+k])
						run = append(run, rankMap[r][0])
					}
					out = append(out, run)
				}
			}
		}
	}
	// Longer anchors first: they tend to reach zero deadwood sooner and
	// trigger the short-circuit.
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// maximalRuns returns the maximal pure runs (length >= 3) currently
// available in the pool, one card per rank.
func maximalRuns(pool []domain.Card) [][]domain.Card {
	var runs [][]domain.Card
	bySuit := suitRankMap(pool)
	for _, suit := range domain.Suits {
		rankMap := bySuit[suit]
		if len(rankMap) < domain.MinMeldSize {
			continue
		}
		ranks := sortedRanks(rankMap)
		for _, seg := range consecutiveSegments(ranks) {
			if seg[1]-seg[0] < domain.MinMeldSize {
				continue
			}
			run := make([]domain.Card, 0, seg[1]-seg[0])
			for k := seg[0]; k < seg[1]; k++ {
				run = append(run, rankMap[domain.Rank(ranks[k])][0])
			}
			runs = append(runs, run)
		}
	}
	return runs
}
