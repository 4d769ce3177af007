// Command solve reads one deck per line from standard input and prints a
// result envelope per deck to standard output, with diagnostics on
// standard error (§6 "External interfaces").
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/config"
	"github.com/cardspan/kspider/game"
	"github.com/cardspan/kspider/move"
	"github.com/cardspan/kspider/render"
	"github.com/cardspan/kspider/solver"
)

// version is the implementation tag reported in every result envelope
// (§6 "version").
const version = "kspider-0.1"

// moveJSON is the wire shape of a winning move (§6 "Move-kind tags").
type moveJSON struct {
	Type   string `json:"type"`
	Extras []int  `json:"extras"`
}

// envelope is the structured per-deck result (§6 "Result output").
type envelope struct {
	Deck            []string   `json:"deck"`
	Status          string     `json:"status"`
	WinningMoves    []moveJSON `json:"winningMoves"`
	MovesConsidered uint64     `json:"movesConsidered"`
	ElapsedSeconds  float64    `json:"elapsedSeconds"`
	TimeoutSeconds  float64    `json:"timeoutSeconds"`
	Version         string     `json:"version"`
}

func main() {
	rulesPath := flag.String("rules", "", "optional rules file (drawSize, tableauSize)")
	showSnapshots := flag.Bool("snapshots", false, "print a per-move board snapshot to stdout")
	flag.Parse()

	timeoutSeconds := float64(config.DefaultTimeoutSeconds)
	if flag.NArg() > 0 {
		parsed, err := strconv.ParseFloat(flag.Arg(0), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid timeoutSeconds %q: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		timeoutSeconds = parsed
	}

	cfg, err := config.Load(*rulesPath, timeoutSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	diag := zerolog.New(os.Stderr).With().Timestamp().Logger()
	out := json.NewEncoder(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		deck, err := cards.ParseDeck(line)
		if err != nil {
			diag.Warn().Int("line", lineNum).Err(err).Msg("malformed deck; skipping")
			continue
		}

		env := solveOne(cfg, deck, diag, *showSnapshots)
		if err := out.Encode(env); err != nil {
			fmt.Fprintf(os.Stderr, "encoding result for line %d: %v\n", lineNum, err)
			os.Exit(1)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func solveOne(cfg config.Config, deck cards.Deck, diag zerolog.Logger, snapshots bool) envelope {
	g := game.NewGame(cfg.Rules, deck)

	s := solver.New(0)
	s.LogStream = os.Stderr

	ctx := context.Background()
	timeout := time.Duration(cfg.TimeoutSeconds * float64(time.Second))
	result, err := s.Solve(ctx, g, timeout)
	if err != nil {
		diag.Error().Err(err).Msg("solver returned an error")
		return envelope{
			Deck:           deckStrings(deck),
			Status:         string(solver.StatusLose),
			TimeoutSeconds: cfg.TimeoutSeconds,
			Version:        version,
		}
	}

	status := result.Status
	if status == solver.StatusWin {
		if bad := replayInvalidMoveIndex(cfg, deck, result.Moves); bad >= 0 {
			diag.Error().Int("moveIndex", bad).Msg("solver produced an invalid move on replay")
			status = solver.StatusLose
			result.Moves = nil
		} else if snapshots {
			printSnapshots(cfg, deck, result.Moves)
		}
	}

	// winningMoves is null unless the deal was actually won (§6): a
	// lose/timeout result must never serialize to an empty array.
	var winningMoves []moveJSON
	if status == solver.StatusWin {
		winningMoves = toMoveJSON(result.Moves)
	}

	return envelope{
		Deck:            deckStrings(deck),
		Status:          string(status),
		WinningMoves:    winningMoves,
		MovesConsidered: result.MovesConsidered,
		ElapsedSeconds:  result.Elapsed.Seconds(),
		TimeoutSeconds:  cfg.TimeoutSeconds,
		Version:         version,
	}
}

// replayInvalidMoveIndex replays moves against a fresh deal and returns
// the index of the first move that fails is_valid, len(moves) if every
// move is valid but the game does not end won, or -1 if every move
// replays cleanly and the game ends won (§7 "Solver internal bug").
func replayInvalidMoveIndex(cfg config.Config, deck cards.Deck, moves []move.Move) int {
	g := game.NewGame(cfg.Rules, deck)
	for i, m := range moves {
		if !g.IsValid(m) {
			return i
		}
		g.Apply(m)
	}
	if !g.IsWon() {
		return len(moves)
	}
	return -1
}

func deckStrings(deck cards.Deck) []string {
	out := make([]string, len(deck))
	for i, c := range deck {
		out[i] = c.String()
	}
	return out
}

// toMoveJSON converts a winning line to its wire shape. moves is nil on
// lose/timeout (solveOne never calls this in that case; see solveOne) and
// may legitimately be an empty, non-nil slice for a deal that was already
// won at deal time.
func toMoveJSON(moves []move.Move) []moveJSON {
	out := make([]moveJSON, len(moves))
	for i, m := range moves {
		extras := m.Extras()
		if extras == nil {
			extras = []int{}
		}
		out[i] = moveJSON{Type: m.Kind.String(), Extras: extras}
	}
	return out
}

func printSnapshots(cfg config.Config, deck cards.Deck, moves []move.Move) {
	g := game.NewGame(cfg.Rules, deck)
	for i := range moves {
		m := moves[i]
		g.Apply(m)
		fmt.Println(render.Snapshot(g, &m))
	}
}
