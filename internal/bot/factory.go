package bot

import "fmt"

// Difficulty selects a bot strategy tier.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty maps a config string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty: %q", s)
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// NewBrain creates a bot brain for the given difficulty.
func NewBrain(d Difficulty) (Brain, error) {
	switch d {
	case DifficultyEasy:
		return &EasyBot{}, nil
	case DifficultyMedium:
		return &MediumBot{}, nil
	case DifficultyHard:
		return &HardBot{}, nil
	default:
		return nil, fmt.Errorf("unknown difficulty: %d", d)
	}
}

func errUnknownPhase(p TurnPhase) error {
	return fmt.Errorf("unknown turn phase: %d", p)
}

// GetBotDecision is the one-shot convenience wrapper around NewBrain.
func GetBotDecision(d Difficulty, ctx Context) (Decision, error) {
	brain, err := NewBrain(d)
	if err != nil {
		return Decision{}, err
	}
	return brain.Decide(ctx)
}
