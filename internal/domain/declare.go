package domain

import "fmt"

// DeclarationResult is the verdict on a full 13-card arrangement. It is
// computed fresh on every call and is advisory: the caller applies the
// scoring consequences.
type DeclarationResult struct {
	IsValid             bool     `json:"is_valid"`
	HasPureSequence     bool     `json:"has_pure_sequence"`
	HasMinimumSequences bool     `json:"has_minimum_sequences"`
	AllCardsMelded      bool     `json:"all_cards_melded"`
	Melds               []Meld   `json:"melds"`
	Deadwood            []Card   `json:"deadwood"`
	DeadwoodPoints      int      `json:"deadwood_points"`
	Violations          []string `json:"violations"`
}

// ValidateDeclaration applies the 2-sequence/1-pure-sequence rule to an
// arrangement of card groups plus explicit leftover deadwood.
//
// Sets only count once the sequence minimum is met: a hand short on
// sequences has every set's cards reclassified as deadwood even when
// the sets are individually valid. Rule failures are reported in
// Violations, never as errors.
func ValidateDeclaration(groups [][]Card, extraDeadwood []Card) DeclarationResult {
	res := DeclarationResult{}

	var sequences, sets []Meld
	deadwood := append([]Card{}, extraDeadwood...)

	for _, g := range groups {
		meld := NewMeld(g)
		switch {
		case meld.IsSequence():
			sequences = append(sequences, meld)
		case meld.Type == MeldSet:
			sets = append(sets, meld)
		default:
			deadwood = append(deadwood, g...)
			res.Violations = append(res.Violations,
				fmt.Sprintf("group %v is not a valid meld", CardIDs(g)))
		}
	}

	pureCount := 0
	for _, m := range sequences {
		if m.IsPure() {
			pureCount++
		}
	}
	res.HasPureSequence = pureCount >= MinPureSequences
	res.HasMinimumSequences = len(sequences) >= MinSequences

	if !res.HasPureSequence {
		res.Violations = append(res.Violations, "declaration has no pure sequence")
	}
	if !res.HasMinimumSequences {
		res.Violations = append(res.Violations,
			fmt.Sprintf("declaration needs at least %d sequences, found %d", MinSequences, len(sequences)))
	}

	res.Melds = sequences
	if res.HasMinimumSequences {
		res.Melds = append(res.Melds, sets...)
	} else {
		// Sets have no standing without the sequence minimum.
		for _, m := range sets {
			deadwood = append(deadwood, m.Cards...)
		}
		if len(sets) > 0 {
			res.Violations = append(res.Violations,
				fmt.Sprintf("%d set(s) do not count without %d sequences", len(sets), MinSequences))
		}
	}

	res.Deadwood = deadwood
	res.DeadwoodPoints = SumValues(deadwood)
	res.AllCardsMelded = len(deadwood) == 0
	if !res.AllCardsMelded {
		res.Violations = append(res.Violations,
			fmt.Sprintf("%d card(s) left unmelded", len(deadwood)))
	}

	total := len(deadwood)
	for _, m := range res.Melds {
		total += len(m.Cards)
	}
	if total != HandSize {
		res.Violations = append(res.Violations,
			fmt.Sprintf("arrangement has %d cards, expected %d", total, HandSize))
	}

	res.IsValid = res.HasPureSequence && res.HasMinimumSequences &&
		res.AllCardsMelded && total == HandSize &&
		len(res.Violations) == 0

	return res
}
