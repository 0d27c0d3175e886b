package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nfmccrina/TuxedoCat/engine"
	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

// fileLogger adapts a zerolog logger to the engine's log sink interface.
type fileLogger struct {
	log zerolog.Logger
}

func (l fileLogger) Log(msg string) { l.log.Info().Msg(msg) }

type session struct {
	board     *tuxmg.Board
	eng       *engine.Engine
	logger    engine.Logger
	forceMode bool
}

func main() {
	logger := engine.Logger(engine.NopLogger{})
	if f, err := os.OpenFile("log.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		defer f.Close()
		logger = fileLogger{zerolog.New(f).With().Timestamp().Logger()}
	}

	board, _ := tuxmg.ParseFEN(tuxmg.FENStartPos)
	eng := engine.New()
	eng.SetLogger(logger)

	s := &session{board: board, eng: eng, logger: logger}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.logger.Log("interface -> engine: " + line)
		if !s.handle(line) {
			return
		}
	}
}

// handle dispatches one interface command; it returns false on quit.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]

	switch cmd {
	case "quit":
		return false
	case "xboard":
		// acknowledged silently
	case "protover":
		s.send("feature ping=1 setboard=1 usermove=1 sigint=0 sigterm=0 done=1")
	case "ping":
		if len(fields) > 1 {
			s.send("pong " + fields[1])
		}
	case "new":
		s.board, _ = tuxmg.ParseFEN(tuxmg.FENStartPos)
		s.eng.MaxSearchDepth = 10000
		s.forceMode = false
	case "force":
		s.forceMode = true
	case "result":
		s.forceMode = true
	case "go":
		s.forceMode = false
		s.respond()
	case "setboard":
		if len(fields) < 2 {
			s.send("Error (missing position): setboard")
			break
		}
		b, err := tuxmg.ParseFEN(strings.Join(fields[1:], " "))
		if err != nil {
			s.send("tellusererror Illegal position")
			break
		}
		s.board = b
	case "sd":
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				s.eng.MaxSearchDepth = engine.Max(1, n)
			}
		}
	case "st":
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				s.eng.TimeControl = engine.TimeControl{
					Type:          engine.TimePerMove,
					RemainingTime: n * 1000,
				}
			}
		}
	case "level":
		s.setLevel(fields[1:])
	case "time":
		// xboard reports remaining time in centiseconds
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				s.eng.TimeControl.RemainingTime = n * 10
			}
		}
	case "otim":
		// opponent clock; nothing to do with it
	case "random":
		s.eng.RandomMode = !s.eng.RandomMode
	case "randommove":
		// Debug command: play a uniformly random legal move for the side to
		// move instead of searching.
		s.playMove(s.eng.GetRandomMove(s.board))
	case "perft":
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				s.send(strconv.FormatUint(tuxmg.Perft(s.board, n), 10))
			}
		}
	case "divide":
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				tuxmg.Divide(s.board, n, os.Stdout)
			}
		}
	case "display":
		printBoard(s.board)
	case "usermove":
		if len(fields) > 1 {
			s.userMove(fields[1])
		}
	case "accepted", "rejected", "hard", "easy", "post", "nopost", "computer":
		// ignored capability chatter
	default:
		if looksLikeMove(cmd) {
			s.userMove(cmd)
		} else {
			s.send("Error (unknown command): " + cmd)
		}
	}
	return true
}

func (s *session) send(msg string) {
	fmt.Println(msg)
	s.logger.Log("engine -> interface: " + msg)
}

// setLevel parses the xboard "level MPS BASE INC" command. BASE is minutes or
// minutes:seconds; INC is seconds. A non-zero increment selects incremental
// mode, otherwise conventional.
func (s *session) setLevel(args []string) {
	if len(args) < 3 {
		return
	}
	mps, err := strconv.Atoi(args[0])
	if err != nil {
		return
	}
	baseMs := 0
	if mins, secs, ok := strings.Cut(args[1], ":"); ok {
		m, err1 := strconv.Atoi(mins)
		sec, err2 := strconv.Atoi(secs)
		if err1 != nil || err2 != nil {
			return
		}
		baseMs = (m*60 + sec) * 1000
	} else {
		m, err := strconv.Atoi(args[1])
		if err != nil {
			return
		}
		baseMs = m * 60 * 1000
	}
	inc, err := strconv.Atoi(args[2])
	if err != nil {
		return
	}

	tc := engine.TimeControl{
		MovesPerControl: mps,
		RemainingTime:   baseMs,
		TimeIncrement:   inc * 1000,
	}
	if inc > 0 {
		tc.Type = engine.Incremental
	} else {
		tc.Type = engine.Conventional
	}
	s.eng.TimeControl = tc
}

// looksLikeMove accepts 4- or 5-character coordinate notation.
func looksLikeMove(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if s[0] < 'a' || s[0] > 'h' || s[2] < 'a' || s[2] > 'h' {
		return false
	}
	if s[1] < '1' || s[1] > '8' || s[3] < '1' || s[3] > '8' {
		return false
	}
	if len(s) == 5 && !strings.ContainsRune("nbrq", rune(s[4])) {
		return false
	}
	return true
}

func (s *session) userMove(notation string) {
	m := tuxmg.ParseXBoardMove(s.board, notation)
	if m.To == 0 {
		s.send("Illegal move: " + notation)
		return
	}
	s.board.Make(m)

	if result := engine.GetGameResult(s.board); result != "" {
		s.send(result)
		return
	}
	if !s.forceMode {
		s.respond()
	}
}

// respond searches the current position and plays the engine's reply.
func (s *session) respond() {
	s.playMove(s.eng.FindMove(s.board))
}

// playMove applies an engine-chosen move and announces it, or falls back to
// the game result when handed the no-move sentinel.
func (s *session) playMove(m tuxmg.Move) {
	if m.To == 0 {
		if result := engine.GetGameResult(s.board); result != "" {
			s.send(result)
		}
		return
	}
	s.board.Make(m)
	s.send("move " + m.String())

	if result := engine.GetGameResult(s.board); result != "" {
		s.send(result)
	}
}
