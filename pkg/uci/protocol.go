package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kinderchess/kinder/pkg/common"
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

var (
	errQuit            = errors.New("quit")
	errCommandNotFound = errors.New("command not found")
	errSearchRunning   = errors.New("search still run")
)

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	position     common.Position
	history      []common.Snapshot
	out          io.Writer
	thinking     bool
	infinite     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	var initPosition, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return &Protocol{
		name:     name,
		author:   author,
		version:  version,
		engine:   engine,
		options:  options,
		position: initPosition,
		out:      os.Stdout,
	}
}

func (uci *Protocol) Run(logger *log.Logger) {
	uci.Serve(os.Stdin, os.Stdout, logger)
}

// Serve reads commands from r until quit or end of input and writes replies to w.
func (uci *Protocol) Serve(r io.Reader, w io.Writer, logger *log.Logger) {
	uci.out = w
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(r, commands)
	}()

	var searchResult common.SearchInfo
	for {
		select {
		case si, ok := <-uci.engineOutput:
			searchResult = uci.onEngineOutput(si, ok, searchResult)
		case commandLine, ok := <-commands:
			var err error
			if ok {
				err = uci.handle(commandLine)
			}
			if !ok || errors.Is(err, errQuit) {
				if uci.thinking && (ok || uci.infinite) {
					uci.cancel()
				}
				for uci.engineOutput != nil {
					var si, ok = <-uci.engineOutput
					searchResult = uci.onEngineOutput(si, ok, searchResult)
				}
				return
			}
			if err != nil {
				logger.Println(err)
			}
		}
	}
}

func (uci *Protocol) onEngineOutput(si common.SearchInfo, ok bool, searchResult common.SearchInfo) common.SearchInfo {
	if ok {
		fmt.Fprintln(uci.out, searchInfoToUci(si))
		return si
	}
	var bestMove = common.MoveEmpty
	if len(searchResult.MainLine) != 0 {
		bestMove = searchResult.MainLine[0]
	}
	fmt.Fprintf(uci.out, "bestmove %v\n", bestMove)
	uci.thinking = false
	uci.infinite = false
	uci.cancel = nil
	uci.engineOutput = nil
	return common.SearchInfo{}
}

func readCommands(r io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine != "" {
			commands <- commandLine
		}
		if commandLine == "quit" {
			return
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if commandName == "quit" {
		return errQuit
	}

	if uci.thinking {
		switch commandName {
		case "stop":
			uci.cancel()
			return nil
		case "isready":
			fmt.Fprintln(uci.out, "readyok")
			return nil
		}
		return errSearchRunning
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "d":
		h = uci.displayCommand
	case "stop":
		return nil
	}

	if h == nil {
		return fmt.Errorf("%w: %v", errCommandNotFound, commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var args = fields
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	var history []common.Snapshot
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			var s, err = p.MakeMoveLAN(smove)
			if err != nil {
				return fmt.Errorf("position moves: %w", err)
			}
			history = append(history, s)
		}
	}
	uci.position = p
	uci.history = history
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	if len(fields) >= 1 && fields[0] == "perft" {
		return uci.perftCommand(fields[1:])
	}
	var limits = parseLimits(fields)
	var ctx, cancel = context.WithCancel(context.TODO())
	uci.cancel = cancel
	uci.thinking = true
	uci.infinite = limits.Infinite
	var output = make(chan common.SearchInfo, 3)
	uci.engineOutput = output
	var searchParams = common.SearchParams{
		Position: uci.position,
		History:  uci.history,
		Limits:   limits,
		Progress: func(si common.SearchInfo) {
			select {
			case output <- si:
			default:
			}
		},
	}
	go func() {
		defer cancel()
		var searchResult = uci.engine.Search(ctx, searchParams)
		output <- searchResult
		close(output)
	}()
	return nil
}

func (uci *Protocol) perftCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("perft depth required")
	}
	var depth, err = strconv.Atoi(fields[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("bad perft depth %v", fields[0])
	}
	var p = uci.position
	var total int64
	for _, item := range common.Divide(&p, depth) {
		fmt.Fprintf(uci.out, "%v: %v\n", item.Move, item.Nodes)
		total += item.Nodes
	}
	fmt.Fprintf(uci.out, "\nNodes searched: %v\n", total)
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	return uci.positionCommand([]string{"startpos"})
}

func (uci *Protocol) displayCommand(fields []string) error {
	fmt.Fprint(uci.out, uci.position.Dump())
	return nil
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func parseLimits(args []string) (result common.LimitsType) {
	for i := 0; i < len(args); i++ {
		var next = func() int {
			if i+1 >= len(args) {
				return 0
			}
			i++
			var v, _ = strconv.Atoi(args[i])
			return v
		}
		switch args[i] {
		case "wtime":
			result.WhiteTime = next()
		case "btime":
			result.BlackTime = next()
		case "winc":
			result.WhiteIncrement = next()
		case "binc":
			result.BlackIncrement = next()
		case "movestogo":
			result.MovesToGo = next()
		case "depth":
			result.Depth = next()
		case "nodes":
			result.Nodes = next()
		case "movetime":
			result.MoveTime = next()
		case "infinite":
			result.Infinite = true
		}
	}
	return
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
