// Package uci implements the engine's side of the Universal Chess
// Interface protocol: a line-oriented command dispatcher that owns the
// current Position, drives searches on a background goroutine so the
// input loop stays responsive to "quit", and formats diagnostics for
// the "info string" stream when debug mode is on.
package uci

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/benthic/plankton/eval"
	"github.com/benthic/plankton/fenload"
	"github.com/benthic/plankton/internal/boardfmt"
	"github.com/benthic/plankton/notation"
	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
	"github.com/benthic/plankton/search"
)

// ErrQuit signals Execute was asked to shut down the input loop.
var ErrQuit = fmt.Errorf("uci: quit")

// msg formats locale-aware diagnostics (large node counts, centipawn
// scores) for the "info string" stream.
var msg = message.NewPrinter(language.English)

var log = logging.MustGetLogger("uci")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
	logging.SetLevel(logging.WARNING, "uci")
}

// defaultMoveFraction divides the side's remaining clock to get its
// share of this move's budget, per EXTERNAL INTERFACES.
const defaultMoveFraction = 35

const moveOverhead = 1000 * time.Millisecond
const moveCap = 15000 * time.Millisecond

// Engine holds the state a UCI session accumulates across commands:
// the current position, the side to move it was reached with, and
// whether the diagnostic stream is on.
type Engine struct {
	pos   *position.Position
	side  pieces.Color
	debug bool

	// Out is where responses and "info string" lines are written.
	Out io.Writer
}

// NewEngine returns an Engine ready to receive UCI commands, writing
// responses to out.
func NewEngine(out io.Writer) *Engine {
	return &Engine{
		pos:  position.StartingPosition(),
		side: pieces.White,
		Out:  out,
	}
}

// Execute parses and runs a single line of UCI input. It returns
// ErrQuit once "quit" has been received; the caller should stop
// reading further input in that case. Unknown commands and malformed
// fields are ignored, per the protocol handler's error handling design;
// with debug on, an "info string" line reports them.
func (e *Engine) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]
	log.Debugf("received %q", line)
	switch cmd {
	case "uci":
		e.handleUCI()
	case "isready":
		e.println("readyok")
	case "ucinewgame":
		e.pos = position.StartingPosition()
		e.side = pieces.White
	case "debug":
		e.handleDebug(args)
	case "position":
		e.handlePosition(args)
	case "go":
		e.handleGo(args)
	case "quit":
		return ErrQuit
	default:
		if e.debug {
			e.println(fmt.Sprintf("info string unhandled command %q", cmd))
		}
	}
	return nil
}

func (e *Engine) handleUCI() {
	e.println("id name Plankton")
	e.println("id author benthic")
	e.println("uciok")
}

func (e *Engine) handleDebug(args []string) {
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "on":
		e.debug = true
	case "off":
		e.debug = false
	}
}

// handlePosition implements "position [startpos|fen <6 fields>] [moves
// <long-alg>...]". A bare "position" or an unparsable FEN is ignored,
// leaving the previous position untouched.
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var movesIdx int
	switch args[0] {
	case "startpos":
		e.pos = position.StartingPosition()
		e.side = pieces.White
		movesIdx = 1
	case "fen":
		if len(args) < 7 {
			return
		}
		fen := strings.Join(args[1:7], " ")
		pos, side, err := fenload.Parse(fen)
		if err != nil {
			if e.debug {
				e.println(fmt.Sprintf("info string fen parse error: %v", err))
			}
			return
		}
		e.pos, e.side = pos, side
		movesIdx = 7
	default:
		return
	}

	if movesIdx >= len(args) || args[movesIdx] != "moves" {
		return
	}

	for _, text := range args[movesIdx+1:] {
		m, err := notation.Decode(e.pos, text)
		if err != nil {
			if e.debug {
				e.println(fmt.Sprintf("info string move decode error: %v", err))
			}
			continue
		}
		e.pos.Make(e.side, m)
		if e.debug {
			e.println(fmt.Sprintf("info string applied %s as %s", text, e.side))
		}
		e.side = e.side.Opponent()
	}

	if e.debug {
		e.printBoard()
	}
}

// printBoard writes the current position as an "info string" block,
// one line per board rank, for GUIs that surface the raw diagnostic
// stream to a human.
func (e *Engine) printBoard() {
	for _, line := range strings.Split(strings.TrimRight(boardfmt.FormatBoard(e.pos), "\n"), "\n") {
		e.println("info string " + line)
	}
	e.println(msg.Sprintf("info string static eval %.2f", e.StaticEval()))
}

type goParams struct {
	wtime, btime time.Duration
	moveTime     time.Duration
	depth        int
	hasDepth     bool
}

func parseGoArgs(args []string) goParams {
	var p goParams
	for i := 0; i+1 < len(args); i += 2 {
		value, err := strconv.Atoi(args[i+1])
		if err != nil {
			continue
		}
		switch args[i] {
		case "wtime":
			p.wtime = time.Duration(value) * time.Millisecond
		case "btime":
			p.btime = time.Duration(value) * time.Millisecond
		case "movetime":
			p.moveTime = time.Duration(value) * time.Millisecond
		case "depth":
			p.depth = value
			p.hasDepth = true
		}
	}
	return p
}

// budget computes the time allotted to this move, per EXTERNAL
// INTERFACES §6: an explicit movetime wins outright; otherwise the
// side's remaining clock is divided by defaultMoveFraction, a fixed
// overhead is added, and the result is capped at moveCap.
func budget(p goParams, side pieces.Color) time.Duration {
	if p.moveTime > 0 {
		return p.moveTime
	}

	sideTime := p.wtime
	if side == pieces.Black {
		sideTime = p.btime
	}

	t := sideTime/defaultMoveFraction + moveOverhead
	if t > moveCap {
		t = moveCap
	}
	return t
}

// handleGo starts a search on a background goroutine so the input
// loop stays free to read "quit" while the search runs. An explicit
// depth disables both iterative deepening and the time cap, matching
// a depth-limited analysis request rather than a timed move.
func (e *Engine) handleGo(args []string) {
	params := parseGoArgs(args)
	pos := e.pos.Clone()
	side := e.side

	go func() {
		var best pieces.Move
		var score float64

		if params.hasDepth {
			far := time.Now().Add(24 * time.Hour)
			m, s, ok := search.BestMove(pos, side, params.depth, far)
			if !ok {
				return
			}
			best, score = m, s
		} else {
			deadline := time.Now().Add(budget(params, side))
			best, score = search.IterativeDeepening(pos, side, deadline)
		}

		if e.debug {
			e.println(msg.Sprintf("info string score %.2f", score))
		}
		e.println("bestmove " + notation.Encode(best))
	}()
}

func (e *Engine) println(s string) {
	fmt.Fprintln(e.Out, s)
}

// StaticEval reports eval.Score for the current position.
func (e *Engine) StaticEval() float64 {
	return eval.Score(e.pos, e.side)
}
