// Command console plays a hot-seat King's Valley game in the terminal using
// the same room manager as the server.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kings-valley/internal/config"
	"kings-valley/internal/game"
	"kings-valley/internal/room"
	"kings-valley/internal/shared"
	"kings-valley/internal/store"
)

const roomCode = "LOCAL"

// screen prints room events to the terminal.
type screen struct {
	out io.Writer
}

func (s screen) Broadcast(_ []string, action string, data interface{}) {
	switch action {
	case shared.EventUpdate:
		u := data.(shared.UpdatePayload)
		fmt.Fprintf(s.out, "\n%s: %s -> %s\n", u.Board.At(u.LastMove.To).Side(), posLabel(u.LastMove.From), posLabel(u.LastMove.To))
		printBoard(s.out, u.Board)
	case shared.EventError:
		fmt.Fprintln(s.out, "error:", data)
	}
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	out := os.Stdout
	mgr := room.NewManager(store.NewMemoryStore(), screen{out: out}, room.WithRule(cfg.SlideRule))
	for _, conn := range []string{game.Red.String(), game.Blue.String()} {
		if _, err := mgr.Join(roomCode, conn); err != nil {
			log.Fatal().Err(err).Msg("join")
		}
	}

	fmt.Fprintf(out, "King's Valley, %s slide rule. Enter moves as: row col row col (1-5).\n\n", cfg.SlideRule)
	snap, _ := mgr.Snapshot(roomCode)
	printBoard(out, snap.Board)

	reader := bufio.NewReader(os.Stdin)
	for snap.Winner == game.NoSide {
		moves := game.LegalMoves(snap.Board, snap.Turn, cfg.SlideRule)
		fmt.Fprintf(out, "\nTurn: %s (%d legal moves)\n", snap.Turn, len(moves))
		if len(moves) <= 12 {
			for _, m := range moves {
				fmt.Fprintf(out, "  %s -> %s\n", posLabel(m.From), posLabel(m.To))
			}
		}

		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out, "\nbye")
			return
		}
		from, to, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if _, err := mgr.Move(snap.Turn.String(), from, to); err != nil {
			fmt.Fprintln(out, "move rejected:", err)
			continue
		}
		snap, _ = mgr.Snapshot(roomCode)
	}

	fmt.Fprintf(out, "\n%s wins!\n", snap.Winner)
}

var errMoveFormat = errors.New("format: row col row col, each 1-5")

// parseMove reads four 1-based coordinates.
func parseMove(line string) (game.Position, game.Position, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return game.Position{}, game.Position{}, errMoveFormat
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return game.Position{}, game.Position{}, errMoveFormat
		}
		v[i] = n - 1
	}
	return game.Position{Row: v[0], Col: v[1]}, game.Position{Row: v[2], Col: v[3]}, nil
}

func posLabel(p game.Position) string {
	return fmt.Sprintf("%d %d", p.Row+1, p.Col+1)
}

func printBoard(w io.Writer, b game.Board) {
	glyph := map[game.Cell]string{
		game.Empty:     ".",
		game.RedPiece:  "r",
		game.BluePiece: "b",
		game.RedKing:   "R",
		game.BlueKing:  "B",
	}
	fmt.Fprintln(w, "  1 2 3 4 5")
	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(w, "%d", r+1)
		for c := 0; c < game.Size; c++ {
			cell := b[r][c]
			if cell == game.Empty && (game.Position{Row: r, Col: c}) == game.Center {
				fmt.Fprint(w, " *")
				continue
			}
			fmt.Fprintf(w, " %s", glyph[cell])
		}
		fmt.Fprintln(w)
	}
}
