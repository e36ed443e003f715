package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game"
	"github.com/macanangkasa/klondike/pkg/game/types"
	"github.com/macanangkasa/klondike/pkg/log"
	"github.com/macanangkasa/klondike/pkg/repositories"
	"github.com/macanangkasa/klondike/pkg/savegame"
	"github.com/macanangkasa/klondike/pkg/state"
)

// Shell is the terminal front end. It translates typed commands into engine
// calls and renders the engine's state; all game rules live in the engine.
type Shell struct {
	engine       *game.Engine
	stateManager state.Manager
	store        repositories.SaveStore
	saveID       string
	compress     bool
	in           io.Reader
	out          io.Writer
}

type ShellOptions struct {
	Engine       *game.Engine
	StateManager state.Manager
	Store        repositories.SaveStore
	SaveID       string
	Compress     bool
	In           io.Reader
	Out          io.Writer
}

func NewShell(opts ShellOptions) *Shell {
	return &Shell{
		engine:       opts.Engine,
		stateManager: opts.StateManager,
		store:        opts.Store,
		saveID:       opts.SaveID,
		compress:     opts.Compress,
		in:           opts.In,
		out:          opts.Out,
	}
}

// Run drives the command loop. The engine is only ever touched from this
// goroutine; the ticker and stdin reader feed it through channel events.
func (s *Shell) Run(ctx context.Context) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	s.render()
	s.prompt()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.engine.Tick()
			s.publish(ctx)
		case line, ok := <-lines:
			if !ok {
				s.saveGame(ctx)
				return
			}
			if quit := s.dispatch(ctx, line); quit {
				s.saveGame(ctx)
				return
			}
			s.prompt()
		}
	}
}

// dispatch runs one command and reports whether the shell should exit.
func (s *Shell) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		s.printHelp()
		return false
	case "draw", "d":
		if err := s.engine.DrawFromStock(); err != nil {
			fmt.Fprintf(s.out, "Cannot draw: %v\n", err)
			return false
		}
	case "move", "m":
		move, err := parseMove(fields[1:])
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			return false
		}
		if _, err := s.engine.ApplyMove(move); err != nil {
			fmt.Fprintf(s.out, "Cannot move: %v\n", err)
			return false
		}
	case "undo", "u":
		if err := s.engine.Undo(); err != nil {
			fmt.Fprintf(s.out, "Cannot undo: %v\n", err)
			return false
		}
	case "hint", "h":
		if move, ok := s.engine.Hint(); ok {
			fmt.Fprintf(s.out, "Try: %s\n", move)
		} else {
			fmt.Fprintln(s.out, "No moves found; try drawing from the stock.")
		}
		return false
	case "new", "n":
		seed := int64(0)
		if len(fields) > 1 {
			parsed, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				fmt.Fprintf(s.out, "Bad seed %q\n", fields[1])
				return false
			}
			seed = parsed
		}
		s.engine.NewGame(seed)
	case "restart", "r":
		s.engine.Restart()
	case "save":
		s.saveGame(ctx)
		fmt.Fprintln(s.out, "Saved.")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command %q; type help for a list.\n", fields[0])
		return false
	}

	s.publish(ctx)
	s.render()
	return false
}

// publish hands a copy of the current state to background collaborators.
func (s *Shell) publish(ctx context.Context) {
	if err := s.stateManager.Set(ctx, s.engine.State()); err != nil {
		log.Error("Failed to publish game state: %v", err)
	}
}

func (s *Shell) saveGame(ctx context.Context) {
	g := s.engine.State()
	var data []byte
	var err error
	if s.compress {
		data, err = savegame.EncodeCompressed(g)
	} else {
		data, err = savegame.Encode(g)
	}
	if err != nil {
		log.Error("Failed to encode game state: %v", err)
		return
	}
	if err := s.store.Save(ctx, s.saveID, data); err != nil {
		log.Error("Failed to save game: %v", err)
	}
}

func (s *Shell) prompt() {
	fmt.Fprint(s.out, "> ")
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  draw                 draw from the stock (recycles the waste when empty)
  move <src> <dst> [n] move n cards (default 1), e.g. "move w t3", "move t1 t5 2"
  undo                 take back the last move
  hint                 suggest a move
  new [seed]           abandon and deal a new game
  restart              redeal the current game from its seed
  save                 save now
  quit                 save and exit
Piles: s=stock w=waste fc/fd/fh/fs=foundations t1..t7=tableau columns
`)
}

func (s *Shell) render() {
	g := s.engine.State()

	fmt.Fprintf(s.out, "\nScore %d   Moves %d   Time %02d:%02d\n",
		g.Score, g.MoveCount, g.ElapsedSeconds/60, g.ElapsedSeconds%60)

	waste := "-"
	if top, ok := g.Waste.Top(); ok {
		waste = top.String()
	}
	fmt.Fprintf(s.out, "Stock [%d]   Waste %s   ", g.Stock.Len(), waste)
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		top, ok := g.Foundations[suit].Top()
		if ok {
			fmt.Fprintf(s.out, "%s ", top)
		} else {
			fmt.Fprintf(s.out, "%s- ", suit.Symbol())
		}
	}
	fmt.Fprintln(s.out)

	for col := 0; col < types.NumTableaus; col++ {
		fmt.Fprintf(s.out, "t%d:", col+1)
		for _, c := range g.Tableaus[col].Cards {
			if c.FaceUp {
				fmt.Fprintf(s.out, " %s", c)
			} else {
				fmt.Fprint(s.out, " ##")
			}
		}
		fmt.Fprintln(s.out)
	}

	if g.Status == types.StatusWon {
		fmt.Fprintf(s.out, "You won in %d moves! Final score %d.\n", g.MoveCount, g.Score)
	}
}

// parseMove translates "move" arguments into a Move value. Legality is the
// engine's business; this only resolves pile names.
func parseMove(args []string) (types.Move, error) {
	if len(args) < 2 || len(args) > 3 {
		return types.Move{}, fmt.Errorf("usage: move <src> <dst> [count]")
	}
	src, err := parsePileToken(args[0])
	if err != nil {
		return types.Move{}, err
	}
	dst, err := parsePileToken(args[1])
	if err != nil {
		return types.Move{}, err
	}
	count := 1
	if len(args) == 3 {
		count, err = strconv.Atoi(args[2])
		if err != nil {
			return types.Move{}, fmt.Errorf("bad card count %q", args[2])
		}
	}
	return types.Move{Source: src, CardCount: count, Dest: dst}, nil
}

func parsePileToken(token string) (types.PileID, error) {
	switch token {
	case "s", "stock":
		return types.StockID, nil
	case "w", "waste":
		return types.WasteID, nil
	case "fc":
		return types.FoundationID(deck.Clubs), nil
	case "fd":
		return types.FoundationID(deck.Diamonds), nil
	case "fh":
		return types.FoundationID(deck.Hearts), nil
	case "fs":
		return types.FoundationID(deck.Spades), nil
	}
	if strings.HasPrefix(token, "t") {
		col, err := strconv.Atoi(token[1:])
		if err == nil && col >= 1 && col <= types.NumTableaus {
			return types.TableauID(col - 1), nil
		}
	}
	return types.PileID{}, fmt.Errorf("unknown pile %q", token)
}
