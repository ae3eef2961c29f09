package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"rummy/internal/bot"
	"rummy/internal/score"
)

type CLI struct {
	Rounds     int    `default:"10" help:"Rounds to play in the points variant"`
	Players    int    `short:"p" default:"4" help:"Number of bot players (2-6)"`
	Difficulty string `default:"medium" help:"Bot difficulty: easy, medium, hard"`
	Variant    string `default:"points" help:"Game variant: points, pool, deals"`
	PoolLimit  int    `default:"101" help:"Elimination total for the pool variant"`
	Deals      int    `default:"3" help:"Round count for the deals variant"`
	Decks      int    `default:"2" help:"Number of 54-card decks in play"`
	Seed       int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Verbose    bool   `short:"v" help:"Log every turn"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1).
			Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD700")).Bold(true)
	outStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Strikethrough(true)
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "rummysim",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	difficulty, err := bot.ParseDifficulty(cli.Difficulty)
	if err != nil {
		logger.Fatal("Bad flag", "error", err)
	}
	variant, err := parseVariant(cli.Variant)
	if err != nil {
		logger.Fatal("Bad flag", "error", err)
	}
	if cli.Players < 2 || cli.Players > 6 {
		logger.Fatal("Player count must be between 2 and 6", "players", cli.Players)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("Starting simulation",
		"players", cli.Players,
		"difficulty", difficulty,
		"variant", variant,
		"decks", cli.Decks,
		"seed", seed)

	fmt.Println(titleStyle.Render(" Indian Rummy Simulator "))
	fmt.Println()

	result, err := runGame(cli, variant, difficulty, rng, logger)
	if err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}

	printStandings(result)
	ctx.Exit(0)
}

func parseVariant(s string) (score.Variant, error) {
	switch s {
	case "points":
		return score.VariantPoints, nil
	case "pool":
		return score.VariantPool, nil
	case "deals":
		return score.VariantDeals, nil
	default:
		return 0, fmt.Errorf("unknown variant: %q", s)
	}
}

func printStandings(r *gameResult) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-12s %8s", "PLAYER", "SCORE")))

	ids := make([]string, 0, len(r.Totals))
	for id := range r.Totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if r.Totals[ids[i]] != r.Totals[ids[j]] {
			return r.Totals[ids[i]] < r.Totals[ids[j]]
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		row := fmt.Sprintf("%-12s %8d", id, r.Totals[id])
		switch {
		case id == r.Winner:
			fmt.Println(winnerStyle.Render(row + "  ← winner"))
		case r.Eliminated[id]:
			fmt.Println(outStyle.Render(row))
		default:
			fmt.Println(row)
		}
	}
	fmt.Println()
	fmt.Printf("Rounds played: %d\n", r.RoundsPlayed)
}
