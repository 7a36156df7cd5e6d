// Package uci implements the Universal Chess Interface protocol: reading
// commands from stdin, driving the search engine, and writing responses
// to stdout. No other package may write to stdout; it carries the
// protocol stream exclusively.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/perft"
)

var log = logging.Get("uci")

const (
	engineName   = "Corvid"
	engineAuthor = "corvidchess"
)

// Session drives one UCI session: one engine, one current position, one
// input/output pair.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	engine *engine.Engine
	pos    *board.Position
}

// NewSession builds a Session reading commands from in and writing
// responses to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		panic(err)
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		engine: engine.NewEngine(),
		pos:    pos,
	}
}

// Run reads and dispatches commands until stdin closes or "quit" is
// received.
func (s *Session) Run() {
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if s.dispatch(line) {
			return
		}
	}
}

func (s *Session) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "uci":
		s.handleUCI()
	case "isready":
		fmt.Fprintln(s.out, "readyok")
	case "ucinewgame":
		s.engine.NewGame()
	case "position":
		s.handlePosition(args)
	case "go":
		s.handleGo(args)
	case "stop":
		s.engine.Stop()
	case "quit":
		return true
	case "d":
		fmt.Fprint(s.out, s.pos.Pretty())
	case "perft":
		s.handlePerft(args)
	default:
		log.Debugf("ignoring unrecognized command: %q", line)
	}
	return false
}

func (s *Session) handleUCI() {
	fmt.Fprintf(s.out, "id name %s\n", engineName)
	fmt.Fprintf(s.out, "id author %s\n", engineAuthor)
	fmt.Fprintln(s.out, "option name Hash type spin default 256 min 1 max 4096")
	fmt.Fprintln(s.out, "uciok")
}

// handlePosition processes "position [startpos|fen <fen>] [moves ...]".
// A malformed FEN is logged and the session's position is left unchanged.
// An illegal or unparseable move in the list is logged, the rest of the
// list is skipped, and the session keeps the position reached after the
// last legal move. Neither case panics.
func (s *Session) handlePosition(args []string) {
	if len(args) == 0 {
		log.Warning("position command with no arguments, ignoring")
		return
	}

	var pos *board.Position
	var rest []string

	switch args[0] {
	case "startpos":
		p, err := board.ParseFEN(board.StartFEN)
		if err != nil {
			log.Errorf("failed to parse startpos fen: %v", err)
			return
		}
		pos = p
		rest = args[1:]
	case "fen":
		end := len(args)
		for i, a := range args[1:] {
			if a == "moves" {
				end = i + 1
				break
			}
		}
		fen := strings.Join(args[1:end], " ")
		p, err := board.ParseFEN(fen)
		if err != nil {
			log.Errorf("failed to parse fen %q: %v", fen, err)
			return
		}
		pos = p
		rest = args[end:]
	default:
		log.Warningf("position command missing startpos/fen, got %q; defaulting to startpos", args[0])
		p, err := board.ParseFEN(board.StartFEN)
		if err != nil {
			log.Errorf("failed to parse startpos fen: %v", err)
			return
		}
		pos = p
		rest = args
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveStr := range rest[1:] {
			if !applyMove(pos, moveStr) {
				log.Warningf("illegal or unparseable move %q, ignoring remainder", moveStr)
				break
			}
		}
	}

	s.pos = pos
}

// applyMove parses and applies a single UCI move string to pos in place.
// It returns false, leaving pos unchanged in effect, if the move string is
// malformed or illegal.
func applyMove(pos *board.Position, moveStr string) bool {
	if len(moveStr) < 4 {
		return false
	}
	from, err := board.ParseSquare(moveStr[0:2])
	if err != nil {
		return false
	}
	_, kind := pos.PieceAt(from)
	if kind == board.InvalidKind {
		return false
	}
	m, err := board.ParseUCIMove(moveStr, kind)
	if err != nil {
		return false
	}

	var moves board.MoveList
	board.GeneratePseudoLegalMoves(pos, &moves)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i) == m {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	var undo board.Undo
	if !pos.MakeMove(m, &undo) {
		return false
	}
	return true
}

// handleGo parses the subset of "go" parameters the engine honors
// (movetime, wtime/btime/winc/binc, depth, infinite) and launches a search
// goroutine. The watcher that enforces the move time budget lives inside
// engine.Engine.Search.
func (s *Session) handleGo(args []string) {
	limits := engine.Limits{}

	var wtime, btime, winc, binc time.Duration
	movesToGo := 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "movetime":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					limits.MoveTime = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil {
					limits.Depth = d
				}
				i++
			}
		case "infinite":
			limits.Infinite = true
		case "wtime":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					wtime = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "btime":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					btime = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "winc":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					winc = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "binc":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					binc = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "movestogo":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					movesToGo = n
				}
				i++
			}
		}
	}

	if limits.MoveTime == 0 && !limits.Infinite && limits.Depth == 0 {
		limits.MoveTime = allocateTime(s.pos.SideToMove, wtime, btime, winc, binc, movesToGo)
	}

	pos := *s.pos
	go s.engine.Search(&pos, limits, s.out)
}

// allocateTime divides the remaining clock into a per-move budget: half
// the increment plus a fraction of the remaining time, split evenly across an
// assumed number of moves left when the GUI did not say.
func allocateTime(side board.Color, wtime, btime, winc, binc time.Duration, movesToGo int) time.Duration {
	remaining, inc := wtime, winc
	if side == board.Black {
		remaining, inc = btime, binc
	}
	if remaining == 0 {
		return 1 * time.Second
	}
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := remaining/time.Duration(movesToGo) + inc/2
	if budget <= 0 {
		budget = 50 * time.Millisecond
	}
	return budget
}

func (s *Session) handlePerft(args []string) {
	if len(args) == 0 {
		log.Warning("perft command with no depth argument, ignoring")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		log.Warningf("invalid perft depth %q, ignoring", args[0])
		return
	}

	splits, total := perft.Divide(s.pos, depth)
	for _, sp := range splits {
		fmt.Fprintf(s.out, "%s: %d\n", sp.Move.String(), sp.Nodes)
	}
	fmt.Fprintf(s.out, "\nNodes searched: %d\n", total)
}
